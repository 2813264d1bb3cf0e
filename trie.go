package ruletrie

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// alphabetSize is the number of letters a normalised rule is built from.
const alphabetSize = 26

// node is one position in the trie. children is indexed by letter offset
// from 'a'; a nil slot means no stored rule extends this path with that
// letter. terminal marks that some inserted rule ends exactly here.
type node struct {
	children [alphabetSize]*node
	terminal bool
}

// Trie stores a set of textual rules and answers exact-membership queries
// against it. All input passes through Normalise before it touches the tree,
// so spellings that normalise identically name the same rule.
//
// A Trie is safe for concurrent use: any number of lookups may run in
// parallel, inserts take exclusive ownership of the tree.
type Trie struct {
	mu   sync.RWMutex
	root *node
	size int
}

// New creates a new empty rule trie. The root node represents the empty
// prefix; its terminal flag records whether the empty rule itself was
// inserted.
func New() *Trie {
	t := new(Trie)
	t.root = new(node)
	return t
}

// notLetter matches every rune outside the ASCII alphabet.
var notLetter = runes.Predicate(func(r rune) bool {
	return !(('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'))
})

// Normalise maps a rule onto the trie's canonical alphabet: every rune that
// is not an ASCII letter is stripped (bytes that are not valid UTF-8 fall
// out with them) and the remainder is lower-cased, preserving relative
// order. A string with no letters normalises to "". Normalise is idempotent
// and is applied identically on Insert and Search. Note that stripped
// characters are dropped, never substituted: "h3ll0" normalises to "hll",
// not "hello".
func Normalise(rule string) string {
	stripped, _, err := transform.String(runes.Remove(notLetter), rule)
	if err != nil {
		return ""
	}
	return strings.ToLower(stripped)
}

// Insert adds rules to the stored set. Each rule is normalised first; a rule
// whose normalised form is empty is stored as the empty rule on the root
// itself. No input is rejected. Inserting a rule that is already present
// leaves the trie unchanged.
//
// Insert panics if the Trie is closed or was not created with New.
func (t *Trie) Insert(rules ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.root == nil {
		panic("ruletrie: Insert on uninitialised or closed Trie")
	}
	for _, rule := range rules {
		t.insert(Normalise(rule))
	}
}

// insert walks one already-normalised rule down from the root, creating
// missing children, and marks the final node terminal.
func (t *Trie) insert(rule string) {
	current := t.root
	for i := 0; i < len(rule); i++ {
		index := rule[i] - 'a'
		if current.children[index] == nil {
			current.children[index] = new(node)
		}
		current = current.children[index]
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// Search reports whether rule is in the stored set. The rule is normalised
// with the same procedure as Insert; only a rule some earlier Insert ended
// exactly on matches, so a stored prefix of a longer rule that was never
// inserted on its own reports false. Search never mutates the trie and never
// fails: on a zero-value or closed Trie it reports false.
func (t *Trie) Search(rule string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	current := t.root
	if current == nil {
		return false
	}
	normal := Normalise(rule)
	for i := 0; i < len(normal); i++ {
		next := current.children[normal[i]-'a']
		if next == nil {
			return false
		}
		current = next
	}
	return current.terminal
}

// Len returns the number of distinct rules stored. Spellings that normalise
// identically count once. A zero-value or closed Trie holds no rules.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Close releases every node in the trie. The walk is iterative with an
// explicit stack, so teardown never grows call-stack depth with the longest
// stored rule. Child links and terminal flags are cleared as nodes are
// visited, leaving no path from any retained node back into the tree.
//
// Close is idempotent. A closed Trie holds no rules and cannot be reused:
// Search reports false for everything, Insert panics. Create a fresh trie
// with New instead.
func (t *Trie) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.root == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(t.root)
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(*node)
		for i, child := range n.children {
			if child != nil {
				stack.Push(child)
				n.children[i] = nil
			}
		}
		n.terminal = false
	}
	t.root = nil
	t.size = 0
}
