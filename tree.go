// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Tree is an immutable rose tree: a value and zero or more subtrees.
type Tree[A any] struct {
	Value    A
	Children []Tree[A]
}

// Leaf creates a tree with no children.
func Leaf[A any](a A) Tree[A] {
	return Tree[A]{Value: a}
}

// Node creates a tree with the given children.
func Node[A any](a A, children ...Tree[A]) Tree[A] {
	return Tree[A]{Value: a, Children: children}
}

// Nodes creates a Many optic over every node value of a tree, in pre-order.
// Modify rebuilds the tree with the same shape and every value updated.
func Nodes[A any]() Optic[Tree[A], A] {
	return Traversal(
		func(t Tree[A]) []A {
			return appendNodes(nil, t)
		},
		func(f func(A) A) func(Tree[A]) Tree[A] {
			var rebuild func(Tree[A]) Tree[A]
			rebuild = func(t Tree[A]) Tree[A] {
				next := Tree[A]{Value: f(t.Value)}
				if len(t.Children) > 0 {
					next.Children = make([]Tree[A], len(t.Children))
					for i, c := range t.Children {
						next.Children[i] = rebuild(c)
					}
				}
				return next
			}
			return rebuild
		},
	)
}

// appendNodes accumulates node values in pre-order.
func appendNodes[A any](acc []A, t Tree[A]) []A {
	acc = append(acc, t.Value)
	for _, c := range t.Children {
		acc = appendNodes(acc, c)
	}
	return acc
}
