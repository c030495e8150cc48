package splay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasEmpty(t *testing.T) {
	assert := assert.New(t)

	found, splayed := Has(intCompare, 1, NewTree[int]())
	assert.False(found)
	assert.Nil(splayed)
}

func TestHasSingleton(t *testing.T) {
	assert := assert.New(t)

	found, splayed := Has(intCompare, 1, singletonTree(1))
	assert.True(found)
	assert.Equal(1, splayed.Item())

	found, splayed = Has(intCompare, 0, singletonTree(1))
	assert.False(found)
	assert.Equal(1, splayed.Item())
}

func TestInsertEmpty(t *testing.T) {
	assert := assert.New(t)

	tree := Insert(intCompare, 1, NewTree[int]())
	assert.Equal(singletonTree(1), tree)
}

func TestInsertPresent(t *testing.T) {
	assert := assert.New(t)

	tree := Insert(intCompare, 1, singletonTree(1))
	assert.Equal(singletonTree(1), tree)

	f := loadFixtures(t)
	sample := f.sample(t, "balanced15")
	want := inorder(sample)
	tree = Insert(intCompare, 10, sample)
	assert.Equal(10, tree.Item(), "the present item is splayed to the root")
	assert.Equal(want, inorder(tree))
}

func TestInsertOccupiedSlot(t *testing.T) {
	f := loadFixtures(t)

	for name, c := range f.Inserts {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			want := append(inorder(fromShape(t, c.Input)), c.Item)

			tree := Insert(intCompare, c.Item, fromShape(t, c.Input))
			assert.Equal(fromShape(t, c.Output), tree)
			assert.ElementsMatch(want, inorder(tree))
		})
	}
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Build(intCompare))
	assert.Nil(Build(intCompare, []int{}...))

	f := loadFixtures(t)
	for name, c := range f.Builds {
		assert.Equal(fromShape(t, c.Output), Build(intCompare, c.Items...), "build %s", name)
	}
}

func TestBuildAscendingRoot(t *testing.T) {
	tree := Build(intCompare, 4, 8, 12, 16, 20)
	assert.Equal(t, 16, tree.Item())
	assert.Equal(t, 20, tree.Right().Item())
}
