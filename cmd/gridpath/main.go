// Command gridpath animates grid path-finding searches in a browser or a
// terminal.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("gridpath failed")
		os.Exit(1)
	}
}
