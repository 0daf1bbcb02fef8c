package styletree

import (
	"regexp"
	"strconv"
)

// UniqueNestedKeys collects the keys of every leaf object in t, depth first
// in key order, without duplicates. Leaf objects are nodes none of whose
// values are trees; scalar keys of non-leaf nodes are not collected.
func UniqueNestedKeys(t *Tree) []string {
	keys := []string{}
	seen := make(map[string]struct{})
	collectLeafKeys(t, seen, &keys)
	return keys
}

func collectLeafKeys(t *Tree, seen map[string]struct{}, out *[]string) {
	if t.IsLeaf() {
		for _, key := range t.Keys() {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			*out = append(*out, key)
		}
		return
	}
	for _, child := range t.children() {
		collectLeafKeys(child, seen, out)
	}
}

// MaxNestedLevel is 0 for a leaf object and one more than the deepest
// nested tree otherwise.
func MaxNestedLevel(t *Tree) int {
	deepest := -1
	for _, child := range t.children() {
		if level := MaxNestedLevel(child); level > deepest {
			deepest = level
		}
	}
	return deepest + 1
}

var lineRegex = regexp.MustCompile(`line (\d+)`)

func lineOf(err error) int {
	matches := lineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
