//go:build !dodgedebug

package round

const assertionsEnabled = false
