package utils

import (
	"cmp"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	jigsaw "github.com/AlexeyTsvetkov/jigsaw-puzzle"
)

const tileExt = ".png"

func isImageFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && strings.EqualFold(filepath.Ext(path), tileExt)
}

// ListImages returns the png files directly inside dir. Files named by a
// number sort numerically and come before the rest, which sort by name.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list tiles: %w", err)
	}
	var paths []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if isImageFile(p) {
			paths = append(paths, p)
		}
	}
	slices.SortFunc(paths, compareTileNames)
	return paths, nil
}

func compareTileNames(a, b string) int {
	na, errA := strconv.Atoi(strings.TrimSuffix(filepath.Base(a), filepath.Ext(a)))
	nb, errB := strconv.Atoi(strings.TrimSuffix(filepath.Base(b), filepath.Ext(b)))
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// ReadTiles loads every png tile in dir. It fails unless all tiles are
// square and share one size.
func ReadTiles(dir string) ([]*jigsaw.Tile, error) {
	paths, err := ListImages(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", jigsaw.ErrNoTiles, tileExt, dir)
	}
	imgs := make([]image.Image, len(paths))
	for i, p := range paths {
		if imgs[i], err = ReadImage(p); err != nil {
			return nil, err
		}
	}
	return jigsaw.NewTiles(imgs)
}

// SaveTiles writes imgs to dir as 0.png, 1.png, ...
func SaveTiles(dir string, imgs []image.Image) error {
	for i, img := range imgs {
		if err := SaveImage(img, filepath.Join(dir, strconv.Itoa(i)+tileExt)); err != nil {
			return err
		}
	}
	return nil
}

// ClearDirectory removes the png tiles in dir and leaves everything else.
func ClearDirectory(dir string) error {
	paths, err := ListImages(dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return err
		}
	}
	return nil
}
