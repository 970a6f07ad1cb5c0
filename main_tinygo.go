//go:build tinygo

package main

import (
	"drawbot/app"
	"drawbot/hal"
)

func main() {
	app.Run(hal.New(), app.Config{})
}
