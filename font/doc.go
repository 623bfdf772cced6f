// The font subpackage knows how to turn raw .ttf/.otf data into usable
// font objects, read their naming tables (family, full name, PostScript
// name and so on) and keep registered fonts in a name-keyed [Library].
//
// The root fontblast package drives discovery across resource bundles
// and uses a Library as its registration target; this subpackage can
// also be used on its own when you already know where your fonts live.
package font
