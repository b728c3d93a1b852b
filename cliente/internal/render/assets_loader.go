package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextureSource fornece os bytes das imagens. *assets.Manager satisfaz a interface.
type TextureSource interface {
	TextureNames() []string
	ReadTexture(name string) ([]byte, string, error)
}

// LoadTextures decodifica e envia para a GPU todas as texturas da fonte.
// Uma textura que falha é apenas registrada: o modelo fica com a textura padrão.
func (r *Renderer) LoadTextures(src TextureSource) {
	for _, name := range src.TextureNames() {
		data, ext, err := src.ReadTexture(name)
		if err != nil {
			r.log.Error().Err(err).Str("texture", name).Msg("FALHA ao carregar textura")
			continue
		}
		r.loadSingleTexture(name, ext, data)
	}
}

func (r *Renderer) loadSingleTexture(name, ext string, data []byte) {
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if img == nil || img.Data == nil {
		r.log.Error().Str("texture", name).Str("format", ext).Msg("FALHA ao decodificar imagem")
		return
	}
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		r.log.Error().Str("texture", name).Msg("FALHA ao enviar textura para a GPU")
		return
	}

	if old, ok := r.Textures[name]; ok {
		rl.UnloadTexture(old)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	r.Textures[name] = tex
	r.log.Info().Str("texture", name).Int32("width", tex.Width).Int32("height", tex.Height).Msg("textura carregada")
}
