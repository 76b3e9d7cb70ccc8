//go:build dodgedebug

package round

const assertionsEnabled = true
