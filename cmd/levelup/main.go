package main

import "github.com/Dacosmicgiant/LevelUp/cmd/levelup/root"

func main() {
	root.Execute()
}
