package model

import "github.com/schoolopoly/client/pkg/math"

// Instance places a registered model in the scene for one frame.
type Instance struct {
	ModelID  int
	Position math.Vec3
	Rotation math.Quat
}

// Transform returns the world matrix for this instance.
func (i Instance) Transform() math.Mat4 {
	return math.Translate(i.Position.X, i.Position.Y, i.Position.Z).Mul(i.Rotation.ToMat4())
}

// Group is the per-model transform list for one draw.
type Group struct {
	ModelID    int
	Transforms []math.Mat4
}

// GroupInstances buckets instances by model id, preserving first-seen
// model order and per-model submission order. Models with no instances
// this frame simply produce no group, so they cost nothing at draw time.
func GroupInstances(instances []Instance) []Group {
	var groups []Group
	index := make(map[int]int)

	for _, inst := range instances {
		gi, ok := index[inst.ModelID]
		if !ok {
			gi = len(groups)
			index[inst.ModelID] = gi
			groups = append(groups, Group{ModelID: inst.ModelID})
		}
		groups[gi].Transforms = append(groups[gi].Transforms, inst.Transform())
	}

	return groups
}

// FlattenTransforms packs group transforms into one float slice for the
// instance buffer upload (16 floats per instance, column-major).
func FlattenTransforms(transforms []math.Mat4) []float32 {
	out := make([]float32, 0, len(transforms)*16)
	for i := range transforms {
		out = append(out, transforms[i][:]...)
	}
	return out
}
