/* Generate the compiled in interpolation filter table. */
package main

import (
	tactile "github.com/doismellburning/tactilemux/src"
)

func main() {
	tactile.GenLpfMain()
}
