package font

import "golang.org/x/image/font/sfnt"

// Font is an alias for [sfnt.Font]. All the functions in this package
// and in fontblast itself operate on *Font values, so most programs
// never need to import the sfnt package directly.
type Font = sfnt.Font
