package department

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestBuildTree(t *testing.T) {
	depts := []Department{
		{ID: 1, Name: "Operations"},
		{ID: 2, Name: "IT", ParentID: ptr(1)},
		{ID: 3, Name: "Facilities", ParentID: ptr(1)},
		{ID: 4, Name: "Support", ParentID: ptr(2)},
		{ID: 5, Name: "Finance", ParentID: ptr(99)},
	}

	tree := BuildTree(depts)
	require.Len(t, tree, 2)
	assert.Equal(t, "Finance", tree[0].Name)
	assert.Equal(t, "Operations", tree[1].Name)

	ops := tree[1]
	require.Len(t, ops.Children, 2)
	assert.Equal(t, "Facilities", ops.Children[0].Name)
	assert.Equal(t, "IT", ops.Children[1].Name)
	require.Len(t, ops.Children[1].Children, 1)
	assert.Equal(t, int64(4), ops.Children[1].Children[0].ID)
}

func TestBuildTree_Empty(t *testing.T) {
	assert.Empty(t, BuildTree(nil))
}

func TestWouldCycle(t *testing.T) {
	depts := []Department{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B", ParentID: ptr(1)},
		{ID: 3, Name: "C", ParentID: ptr(2)},
	}
	assert.True(t, WouldCycle(depts, 1, 3))
	assert.True(t, WouldCycle(depts, 2, 2))
	assert.False(t, WouldCycle(depts, 3, 1))
	assert.False(t, WouldCycle(depts, 1, 42))
}
