// inspect prints the structure of .vmod files.
package main

import (
	"fmt"
	"math"
	"os"

	"vmod-renderer/internal/vmod"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspect model.vmod [...]")
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		m, err := vmod.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			continue
		}

		fmt.Printf("\n=== %s ===\n", arg)
		fmt.Printf("Positions: %d  TexCoords: %d  Normals: %d\n",
			len(m.Positions), len(m.TexCoords), len(m.Normals))

		for i, mesh := range m.Meshes {
			fmt.Printf("Mesh[%d]: faces=%d texcoords=%v normals=%v material=%s\n",
				i, len(mesh.Faces), mesh.HasTexCoords, mesh.HasNormals, indexStr(mesh.Material))
		}

		for i, mat := range m.Materials {
			fmt.Printf("Material[%d]: albedo=%s normal=%s\n",
				i, indexStr(mat.Albedo), indexStr(mat.Normal))
		}

		for i := range m.Images {
			im := &m.Images[i]
			fmt.Printf("Image[%d]: %dx%d (%d channels)\n", i, im.Width, im.Height, im.Channels)
		}

		printBounds(m)
	}
}

func indexStr(idx int) string {
	if idx == vmod.NoIndex {
		return "none"
	}
	return fmt.Sprintf("%d", idx)
}

func printBounds(m *vmod.Model) {
	if len(m.Positions) == 0 {
		return
	}
	var bmin, bmax [3]float64
	for k := 0; k < 3; k++ {
		bmin[k] = math.Inf(1)
		bmax[k] = math.Inf(-1)
	}
	for _, p := range m.Positions {
		for k := 0; k < 3; k++ {
			v := float64(p[k])
			if v < bmin[k] {
				bmin[k] = v
			}
			if v > bmax[k] {
				bmax[k] = v
			}
		}
	}
	fmt.Printf("Bounds: x=[%.3f..%.3f] y=[%.3f..%.3f] z=[%.3f..%.3f]\n",
		bmin[0], bmax[0], bmin[1], bmax[1], bmin[2], bmax[2])
}
