// Command financepro projects savings, amortizes loans and compares
// investing against buying property.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
