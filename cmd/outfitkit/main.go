// Outfitkit - outfit colour analysis and matching
//
// Outfitkit analyses clothing photos, names their dominant colours and
// suggests colour-coordinated outfits.
package main

import (
	"github.com/outfitkit/outfitkit/internal/cli"
)

func main() {
	cli.Execute()
}
