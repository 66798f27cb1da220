/* Real-time tactile channel multiplexer. */
package main

import (
	tactile "github.com/doismellburning/tactilemux/src"
)

func main() {
	tactile.MuxMain()
}
