/* Generate a multiplexed tactile test signal. */
package main

import (
	tactile "github.com/doismellburning/tactilemux/src"
)

func main() {
	tactile.GenTactileMain()
}
