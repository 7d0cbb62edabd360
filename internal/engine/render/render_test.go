package render

import (
	"sync"
	"testing"
)

func quadColor(c [4]float32) Model {
	v := ColorVertex{Color: c}
	return Model{
		Source: Source{Kind: SourcePerVertex},
		Colors: []ColorVertex{v, v, v, v, v, v},
	}
}

func quadAtlas(id int) Model {
	v := TexVertex{Alpha: 1, ColorScale: 1}
	return Model{
		Source: Source{Kind: SourceAtlas, Atlas: id},
		Texs:   []TexVertex{v, v, v, v, v, v},
	}
}

func quadTex(tex uint32) Model {
	v := TexVertex{Alpha: 1, ColorScale: 1}
	return Model{
		Source: Source{Kind: SourceTexture, Texture: tex},
		Texs:   []TexVertex{v, v, v, v, v, v},
	}
}

func TestPartitionMergesColor(t *testing.T) {
	red := quadColor([4]float32{1, 0, 0, 1})
	blue := quadColor([4]float32{0, 0, 1, 1})

	b := Partition([]Model{red, blue})

	if len(b.Color) != 12 {
		t.Fatalf("expected 12 merged color vertices, got %d", len(b.Color))
	}
	// Submission order preserved
	if b.Color[0].Color != [4]float32{1, 0, 0, 1} || b.Color[6].Color != [4]float32{0, 0, 1, 1} {
		t.Error("color vertices out of submission order")
	}
}

func TestPartitionMergesSameAtlas(t *testing.T) {
	b := Partition([]Model{quadAtlas(3), quadColor([4]float32{1, 1, 1, 1}), quadAtlas(3)})

	if len(b.Atlas) != 1 {
		t.Fatalf("same atlas id should merge into one bucket, got %d", len(b.Atlas))
	}
	if b.Atlas[0].Atlas != 3 {
		t.Errorf("expected atlas id 3, got %d", b.Atlas[0].Atlas)
	}
	if len(b.Atlas[0].Verts) != 12 {
		t.Errorf("expected 12 merged atlas vertices, got %d", len(b.Atlas[0].Verts))
	}
}

func TestPartitionSeparatesAtlasIDs(t *testing.T) {
	b := Partition([]Model{quadAtlas(0), quadAtlas(1), quadAtlas(0)})

	if len(b.Atlas) != 2 {
		t.Fatalf("distinct atlas ids need distinct buckets, got %d", len(b.Atlas))
	}
	// First-seen order
	if b.Atlas[0].Atlas != 0 || b.Atlas[1].Atlas != 1 {
		t.Errorf("expected bucket order [0, 1], got [%d, %d]", b.Atlas[0].Atlas, b.Atlas[1].Atlas)
	}
	if len(b.Atlas[0].Verts) != 12 || len(b.Atlas[1].Verts) != 6 {
		t.Errorf("vertex distribution wrong: %d and %d", len(b.Atlas[0].Verts), len(b.Atlas[1].Verts))
	}
}

func TestPartitionTexBuckets(t *testing.T) {
	b := Partition([]Model{quadTex(7), quadTex(7), quadTex(9), quadTex(7)})

	// Adjacent same-texture models share a bucket; a different texture in
	// between forces a new bind
	if len(b.Tex) != 3 {
		t.Fatalf("expected 3 tex buckets, got %d", len(b.Tex))
	}
	if b.Tex[0].Texture != 7 || b.Tex[1].Texture != 9 || b.Tex[2].Texture != 7 {
		t.Errorf("bucket texture order wrong: %d, %d, %d",
			b.Tex[0].Texture, b.Tex[1].Texture, b.Tex[2].Texture)
	}
	if len(b.Tex[0].Verts) != 12 {
		t.Errorf("adjacent same-texture models should merge, got %d verts", len(b.Tex[0].Verts))
	}
}

func TestPartitionSkipsEmptyModels(t *testing.T) {
	b := Partition([]Model{{Source: Source{Kind: SourcePerVertex}}, quadColor([4]float32{1, 1, 1, 1})})

	if len(b.Color) != 6 {
		t.Errorf("empty models should contribute nothing, got %d vertices", len(b.Color))
	}
}

func TestDimensionsRoundTrip(t *testing.T) {
	SetDimensions(1920, 1080)
	w, h := Dimensions()
	if w != 1920 || h != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", w, h)
	}

	SetDimensions(1, 1)
	w, h = Dimensions()
	if w != 1 || h != 1 {
		t.Errorf("expected 1x1, got %dx%d", w, h)
	}
}

func TestDimensionsNoTearing(t *testing.T) {
	// Width and height always come from the same store, even with a
	// writer racing the readers.
	SetDimensions(0, 0)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			SetDimensions(uint32(i), uint32(i*2))
		}
		close(done)
	}()

	for {
		w, h := Dimensions()
		if h != w*2 {
			t.Errorf("torn read: %dx%d", w, h)
			break
		}
		select {
		case <-done:
			wg.Wait()
			return
		default:
		}
	}
	wg.Wait()
}

func TestGrayscaleFlagBit(t *testing.T) {
	if GrayscaleConvFlag != 1 {
		t.Errorf("grayscale flag must be bit 0, got %d", GrayscaleConvFlag)
	}
	v := TexVertex{Meta: GrayscaleConvFlag}
	if v.Meta&GrayscaleConvFlag == 0 {
		t.Error("meta bit not set")
	}
}
