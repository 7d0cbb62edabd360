package model

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads a glTF 2.0 file (.gltf or .glb) into CPU-side model data.
// Only the attributes the renderer consumes are read: positions, normals,
// texture coordinates, indices, and base-color materials.
func LoadGLTF(path string) (ModelData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return ModelData{}, fmt.Errorf("opening %s: %w", path, err)
	}

	var out ModelData

	for _, m := range doc.Materials {
		mat := MaterialData{BaseColor: [4]float32{1, 1, 1, 1}}
		if pbr := m.PBRMetallicRoughness; pbr != nil {
			if pbr.BaseColorFactor != nil {
				mat.BaseColor = *pbr.BaseColorFactor
			}
			if pbr.BaseColorTexture != nil {
				img, err := readTextureImage(doc, int(pbr.BaseColorTexture.Index), filepath.Dir(path))
				if err != nil {
					return ModelData{}, fmt.Errorf("material %q: %w", m.Name, err)
				}
				mat.Pixels = img.Pix
				mat.Width = img.Rect.Dx()
				mat.Height = img.Rect.Dy()
			}
		}
		out.Materials = append(out.Materials, mat)
	}
	if len(out.Materials) == 0 {
		out.Materials = []MaterialData{{BaseColor: [4]float32{1, 1, 1, 1}}}
	}

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			md, err := readPrimitive(doc, prim)
			if err != nil {
				return ModelData{}, fmt.Errorf("mesh %q: %w", mesh.Name, err)
			}
			out.Meshes = append(out.Meshes, md)
		}
	}

	if len(out.Meshes) == 0 {
		return ModelData{}, fmt.Errorf("%s contains no mesh primitives", path)
	}
	return out, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (MeshData, error) {
	var md MeshData

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return md, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return md, fmt.Errorf("reading positions: %w", err)
	}
	for _, p := range positions {
		md.Positions = append(md.Positions, p[0], p[1], p[2])
	}

	if normIdx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return md, fmt.Errorf("reading normals: %w", err)
		}
		for _, n := range normals {
			md.Normals = append(md.Normals, n[0], n[1], n[2])
		}
	} else {
		// Flat default, pointing up
		md.Normals = make([]float32, len(md.Positions))
		for i := 1; i < len(md.Normals); i += 3 {
			md.Normals[i] = 1
		}
	}

	if uvIdx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return md, fmt.Errorf("reading texcoords: %w", err)
		}
		for _, uv := range uvs {
			md.TexCoords = append(md.TexCoords, uv[0], uv[1])
		}
	} else {
		md.TexCoords = make([]float32, 2*len(positions))
	}

	if prim.Indices != nil {
		md.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return md, fmt.Errorf("reading indices: %w", err)
		}
	} else {
		md.Indices = make([]uint32, len(positions))
		for i := range md.Indices {
			md.Indices[i] = uint32(i)
		}
	}

	if prim.Material != nil {
		md.Material = int(*prim.Material)
	}
	return md, nil
}

// readTextureImage decodes a glTF texture into RGBA pixels. Embedded
// buffer-view images and external files next to the model are supported.
func readTextureImage(doc *gltf.Document, texIdx int, baseDir string) (*image.RGBA, error) {
	if texIdx < 0 || texIdx >= len(doc.Textures) {
		return nil, fmt.Errorf("texture index %d out of range", texIdx)
	}
	tex := doc.Textures[texIdx]
	if tex.Source == nil {
		return nil, fmt.Errorf("texture %d has no image source", texIdx)
	}
	img := doc.Images[*tex.Source]

	var data []byte
	switch {
	case img.BufferView != nil:
		raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
		if err != nil {
			return nil, fmt.Errorf("reading embedded image: %w", err)
		}
		data = raw
	case img.URI != "":
		raw, err := os.ReadFile(filepath.Join(baseDir, img.URI))
		if err != nil {
			return nil, fmt.Errorf("reading image %s: %w", img.URI, err)
		}
		data = raw
	default:
		return nil, fmt.Errorf("image %q has neither buffer view nor URI", img.Name)
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image %q: %w", img.Name, err)
	}

	rgba, ok := decoded.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(decoded.Bounds())
		draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	}
	return rgba, nil
}
