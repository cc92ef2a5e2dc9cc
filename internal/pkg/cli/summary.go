// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/xlab/treeprint"
)

// routeTree renders the routes of d under root, nesting each route under its closest declared ancestor.
func routeTree(root string, d *descriptor.Descriptor) string {
	tree := treeprint.NewWithRoot(root)
	branches := map[string]treeprint.Tree{"/": tree}
	for _, route := range d.SortedRoutes() {
		verbs := strings.Join(route.Methods.SortedVerbs(), " ")
		if route.Path == "/" {
			tree.SetMetaValue(verbs)
			continue
		}
		parent, label := closestAncestor(branches, route.Path)
		branches[route.Path] = parent.AddMetaBranch(verbs, label)
	}
	return tree.String()
}

// closestAncestor returns the branch of the longest declared prefix of routePath and the rest of the path.
func closestAncestor(branches map[string]treeprint.Tree, routePath string) (treeprint.Tree, string) {
	for p := routePath; ; {
		i := strings.LastIndex(p, "/")
		if i <= 0 {
			return branches["/"], routePath
		}
		p = p[:i]
		if b, ok := branches[p]; ok {
			return b, strings.TrimPrefix(routePath, p)
		}
	}
}
