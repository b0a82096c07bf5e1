// Voicegen audits a world's narration audio: every text key can be backed
// by a <key>.mp3 file, and this tool reports which recordings are missing.
// Usage: voicegen [--touch] <world_directory> <audio_directory>
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/athell/grimoire/loader"
)

func main() {
	touch := false
	var dirs []string

	for _, arg := range os.Args[1:] {
		if arg == "--touch" {
			touch = true
			continue
		}
		dirs = append(dirs, arg)
	}

	if len(dirs) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: voicegen [--touch] <world_directory> <audio_directory>\n")
		os.Exit(1)
	}
	worldDir, audioDir := dirs[0], dirs[1]

	realm, err := loader.Load(worldDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	var missing []string
	for _, key := range realm.Texts.Keys() {
		path := filepath.Join(audioDir, key+".mp3")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		missing = append(missing, key)
	}

	if len(missing) == 0 {
		fmt.Printf("All %d text keys have audio files.\n", len(realm.Texts.Keys()))
		return
	}

	fmt.Printf("%d of %d text keys have no audio file:\n", len(missing), len(realm.Texts.Keys()))
	for _, key := range missing {
		fmt.Printf("  %s.mp3\n", key)
	}

	if !touch {
		return
	}

	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating audio directory: %v\n", err)
		os.Exit(1)
	}
	for _, key := range missing {
		path := filepath.Join(audioDir, key+".mp3")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", path, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Created %d placeholder files in %s.\n", len(missing), audioDir)
}
