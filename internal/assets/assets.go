package assets

import "golang.org/x/image/font/gofont/goregular"

// FontTTF is the bundled label font (Go Regular). It is used whenever no
// font file is configured, so output is identical across machines.
var FontTTF = goregular.TTF
