// pack builds a .vmod file from a JSON mesh description and its image files.
//
// The mesh description looks like:
//
//	{
//	  "positions": [[0,0,0], [1,0,0], [0,1,0]],
//	  "texcoords": [[0,0], [1,0], [0,1]],
//	  "normals":   [[0,0,1], [0,0,1], [0,0,1]],
//	  "faces":     [{"p": [0,1,2], "t": [0,1,2], "n": [0,1,2]}],
//	  "materials": [{"albedo": "albedo.png", "normal": "normal.tga"}],
//	  "material":  0
//	}
//
// Image paths are resolved relative to the description file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"vmod-renderer/internal/texture"
	"vmod-renderer/internal/vmod"
)

type meshDesc struct {
	Positions [][3]float32 `json:"positions"`
	TexCoords [][2]float32 `json:"texcoords"`
	Normals   [][3]float32 `json:"normals"`
	Faces     []faceDesc   `json:"faces"`
	Materials []matDesc    `json:"materials"`
	Material  *int         `json:"material"`
}

type faceDesc struct {
	P [3]int `json:"p"`
	T [3]int `json:"t"`
	N [3]int `json:"n"`
}

type matDesc struct {
	Albedo string `json:"albedo"`
	Normal string `json:"normal"`
}

func main() {
	meshFile := flag.String("mesh", "", "Path to the JSON mesh description")
	output := flag.String("output", "", "Output .vmod path (default: mesh name with .vmod)")
	flag.Parse()

	if *meshFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: pack -mesh model.json [-output model.vmod]")
		os.Exit(1)
	}

	outPath := *output
	if outPath == "" {
		outPath = (*meshFile)[:len(*meshFile)-len(filepath.Ext(*meshFile))] + ".vmod"
	}

	m, err := buildModel(*meshFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := vmod.Encode(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mesh := &m.Meshes[0]
	fmt.Printf("Packed %s: %d positions, %d faces, %d images (%d bytes)\n",
		outPath, len(m.Positions), len(mesh.Faces), len(m.Images), len(data))
}

func buildModel(descPath string) (*vmod.Model, error) {
	raw, err := os.ReadFile(descPath)
	if err != nil {
		return nil, fmt.Errorf("pack: read %s: %w", descPath, err)
	}

	var desc meshDesc
	if err := json.Unmarshal(raw, &desc); err != nil {
		return nil, fmt.Errorf("pack: parse %s: %w", descPath, err)
	}

	m := &vmod.Model{}
	for _, p := range desc.Positions {
		m.Positions = append(m.Positions, mgl32.Vec3(p))
	}
	for _, uv := range desc.TexCoords {
		m.TexCoords = append(m.TexCoords, mgl32.Vec2(uv))
	}
	for _, n := range desc.Normals {
		m.Normals = append(m.Normals, mgl32.Vec3(n))
	}

	// Load referenced images, deduplicated by path.
	cache := texture.NewCache()
	baseDir := filepath.Dir(descPath)
	imageIndex := make(map[string]int)
	loadImage := func(rel string) (int, error) {
		if rel == "" {
			return vmod.NoIndex, nil
		}
		path := filepath.Join(baseDir, rel)
		if idx, ok := imageIndex[path]; ok {
			return idx, nil
		}
		img, err := cache.Load(path)
		if err != nil {
			return vmod.NoIndex, err
		}
		m.Images = append(m.Images, img)
		idx := len(m.Images) - 1
		imageIndex[path] = idx
		return idx, nil
	}

	for _, md := range desc.Materials {
		albedo, err := loadImage(md.Albedo)
		if err != nil {
			return nil, err
		}
		normal, err := loadImage(md.Normal)
		if err != nil {
			return nil, err
		}
		m.Materials = append(m.Materials, vmod.Material{Albedo: albedo, Normal: normal})
	}

	mesh := vmod.Mesh{
		HasTexCoords: len(m.TexCoords) > 0,
		HasNormals:   len(m.Normals) > 0,
		Material:     vmod.NoIndex,
	}
	if desc.Material != nil {
		if *desc.Material < 0 || *desc.Material >= len(m.Materials) {
			return nil, fmt.Errorf("pack: material index %d out of range", *desc.Material)
		}
		mesh.Material = *desc.Material
	}
	for _, f := range desc.Faces {
		mesh.Faces = append(mesh.Faces, vmod.Face{
			Position: f.P,
			TexCoord: f.T,
			Normal:   f.N,
		})
	}
	m.Meshes = []vmod.Mesh{mesh}

	return m, nil
}
