package main

import "github.com/theirongolddev/hisab/cmd"

func main() {
	cmd.Execute()
}
