/* Measure carrier slot power in a multiplexed recording. */
package main

import (
	tactile "github.com/doismellburning/tactilemux/src"
)

func main() {
	tactile.MuxAnalyzeMain()
}
