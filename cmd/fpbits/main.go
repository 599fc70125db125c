// fpbits inspects and builds IEEE-754 bit patterns.
package main

import (
	"github.com/floatbits/ieee754/cmd/fpbits/cmd"
)

func main() {
	cmd.Execute()
}
