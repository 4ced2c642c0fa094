package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(t *testing.T) {
	// Testing the main function is challenging because it calls cmd.Execute()
	// which may perform CLI operations and potentially exit the program.

	// For now, just verify that the main function exists
	assert.NotNil(t, main)
}
