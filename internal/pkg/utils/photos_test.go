package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhotoFile(t *testing.T) {
	assert.True(t, IsPhotoFile("IMG_0001.JPG"))
	assert.True(t, IsPhotoFile("dir/shot.jpeg"))
	assert.True(t, IsPhotoFile("a.heic"))
	assert.False(t, IsPhotoFile(".DS_Store"))
	assert.False(t, IsPhotoFile(".hidden.jpg"))
	assert.False(t, IsPhotoFile("notes.txt"))
	assert.False(t, IsPhotoFile("raw"))
}
