package department

import "sort"

// BuildTree nests departments under their parents. Departments whose parent
// is missing from the input become roots. Children are ordered by name.
func BuildTree(departments []Department) []TreeNode {
	index := make(map[int64]int, len(departments))
	for i, d := range departments {
		index[d.ID] = i
	}

	children := make([][]int, len(departments))
	var roots []int
	for i, d := range departments {
		if d.ParentID != nil {
			if p, ok := index[*d.ParentID]; ok && p != i {
				children[p] = append(children[p], i)
				continue
			}
		}
		roots = append(roots, i)
	}

	byName := func(ids []int) {
		sort.SliceStable(ids, func(a, b int) bool {
			return departments[ids[a]].Name < departments[ids[b]].Name
		})
	}

	visited := make([]bool, len(departments))
	var build func(i int) TreeNode
	build = func(i int) TreeNode {
		visited[i] = true
		d := departments[i]
		node := TreeNode{
			ID:            d.ID,
			Name:          d.Name,
			Code:          d.Code,
			ManagerName:   d.ManagerName,
			EmployeeCount: d.EmployeeCount,
			Children:      []TreeNode{},
		}
		byName(children[i])
		for _, c := range children[i] {
			if !visited[c] {
				node.Children = append(node.Children, build(c))
			}
		}
		return node
	}

	byName(roots)
	tree := make([]TreeNode, 0, len(roots))
	for _, r := range roots {
		tree = append(tree, build(r))
	}
	return tree
}

// WouldCycle reports whether making parentID the parent of id creates a loop.
func WouldCycle(departments []Department, id, parentID int64) bool {
	parents := make(map[int64]*int64, len(departments))
	for _, d := range departments {
		parents[d.ID] = d.ParentID
	}

	seen := map[int64]bool{}
	for cur := &parentID; cur != nil; cur = parents[*cur] {
		if *cur == id {
			return true
		}
		if seen[*cur] {
			return true
		}
		seen[*cur] = true
	}
	return false
}
