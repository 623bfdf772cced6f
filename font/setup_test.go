package font

// Shared test fonts and helpers. The Go fonts ship as raw TTF bytes
// within golang.org/x/image, so the tests always have real font
// binaries available without carrying assets around.

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"

var testFontA *Font // Go Regular
var testNameA string
var testFontB *Font // Go Bold
var testNameB string

func init() {
	var err error
	testFontA, testNameA, err = ParseBytes(goregular.TTF)
	if err != nil { panic(err) }
	testFontB, testNameB, err = ParseBytes(gobold.TTF)
	if err != nil { panic(err) }
	if testNameA == testNameB { panic("test fonts share a canonical name") }
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
