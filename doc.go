/*
Package ruletrie provides a prefix tree holding a set of textual rules and
answering exact-membership queries against it. Every rule is normalised to
the 26-letter lowercase alphabet before both insertion and lookup, so
spelling variants such as "Stop-Loss", "STOPLOSS" and "stop loss" all name
the same stored rule.
*/
package ruletrie
