package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"VirtuaRacing/cliente/internal/camera"
	"VirtuaRacing/cliente/internal/race"
	"VirtuaRacing/shared/config"
	"VirtuaRacing/shared/mesh"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Índices do array Locs do shader (enum ShaderLocationIndex do raylib).
const (
	locMatrixModel  = 9  // SHADER_LOC_MATRIX_MODEL
	locMatrixNormal = 10 // SHADER_LOC_MATRIX_NORMAL
	locColorDiffuse = 12 // SHADER_LOC_COLOR_DIFFUSE
	locMapDiffuse   = 15 // SHADER_LOC_MAP_DIFFUSE
)

// Renderer é o backend raylib: mantém os modelos na GPU e desenha as instruções da corrida.
// Só pode ser usado na thread que criou a janela.
type Renderer struct {
	models   map[string]rl.Model
	Textures map[string]rl.Texture2D

	litShader   rl.Shader
	unlitShader rl.Shader

	camera rl.Camera3D
	in3D   bool

	Wireframe bool

	// Estatísticas do último frame (HUD)
	DrawCalls int
	Triangles int

	log zerolog.Logger
}

// NewRenderer compila os shaders e configura a luz. Exige a janela aberta.
func NewRenderer(light config.LightConfig, log zerolog.Logger) *Renderer {
	r := &Renderer{
		models:   make(map[string]rl.Model),
		Textures: make(map[string]rl.Texture2D),
		log:      log,
	}

	if !rl.IsWindowReady() {
		log.Warn().Msg("janela não inicializada, shaders não carregados")
		return r
	}

	r.litShader = rl.LoadShaderFromMemory(litVertexShader, litFragmentShader)
	r.unlitShader = rl.LoadShaderFromMemory(unlitVertexShader, unlitFragmentShader)

	// Locs é um ponteiro bruto (*int32) para um array C; registramos os uniforms que o
	// raylib preenche sozinho a cada DrawMesh
	locs := unsafe.Slice(r.litShader.Locs, 32)
	locs[locMatrixModel] = rl.GetShaderLocation(r.litShader, "matModel")
	locs[locMatrixNormal] = rl.GetShaderLocation(r.litShader, "matNormal")
	locs[locMapDiffuse] = rl.GetShaderLocation(r.litShader, "texture0")
	locs[locColorDiffuse] = rl.GetShaderLocation(r.litShader, "colDiffuse")

	locsU := unsafe.Slice(r.unlitShader.Locs, 32)
	locsU[locMapDiffuse] = rl.GetShaderLocation(r.unlitShader, "texture0")
	locsU[locColorDiffuse] = rl.GetShaderLocation(r.unlitShader, "colDiffuse")

	r.SetLight(light)

	r.camera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	return r
}

// SetLight envia direção e intensidades do sol para o shader iluminado.
func (r *Renderer) SetLight(light config.LightConfig) {
	dir := mgl32.Vec3{0, 1, 0}
	if len(light.Direction) == 3 {
		dir = mgl32.Vec3{light.Direction[0], light.Direction[1], light.Direction[2]}
	}
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}

	rl.SetShaderValue(r.litShader, rl.GetShaderLocation(r.litShader, "lightDir"), dir[:], rl.ShaderUniformVec3)
	rl.SetShaderValue(r.litShader, rl.GetShaderLocation(r.litShader, "ambient"), []float32{light.Ambient}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.litShader, rl.GetShaderLocation(r.litShader, "diffuse"), []float32{light.Diffuse}, rl.ShaderUniformFloat)
	r.log.Debug().Floats32("dir", dir[:]).Float32("ambient", light.Ambient).Float32("diffuse", light.Diffuse).Msg("luz configurada")
}

// UploadMeshes envia os buffers para a GPU. Buffers vazios são ignorados.
func (r *Renderer) UploadMeshes(meshes map[string]*mesh.Buffer) {
	for name, buf := range meshes {
		if old, ok := r.models[name]; ok {
			rl.UnloadModel(old)
			delete(r.models, name)
		}
		if buf.TriangleCount() == 0 {
			r.log.Warn().Str("mesh", name).Msg("malha vazia, nada a enviar")
			continue
		}

		m := r.bufferToMesh(buf)
		rl.UploadMesh(&m, false)
		r.freeMeshRAM(&m)
		r.models[name] = rl.LoadModelFromMesh(m)
		r.log.Debug().Str("mesh", name).Int("triangles", buf.TriangleCount()).Msg("malha enviada para a GPU")
	}
}

func (r *Renderer) bufferToMesh(buf *mesh.Buffer) rl.Mesh {
	var m rl.Mesh
	m.VertexCount = int32(buf.VertexCount())
	m.TriangleCount = int32(buf.TriangleCount())

	positions := buf.Positions()
	normals := buf.RenderNormals()
	uvs := buf.UVs()

	m.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&positions[0]), len(positions)*4))
	if len(normals) > 0 {
		m.Normals = (*float32)(r.copyToC(unsafe.Pointer(&normals[0]), len(normals)*4))
	}
	if len(uvs) > 0 {
		m.Texcoords = (*float32)(r.copyToC(unsafe.Pointer(&uvs[0]), len(uvs)*4))
	}
	return m
}

func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a memória principal (C) associada a uma malha após o upload para a GPU.
func (r *Renderer) freeMeshRAM(m *rl.Mesh) {
	if m.Vertices != nil {
		C.free(unsafe.Pointer(m.Vertices))
		m.Vertices = nil
	}
	if m.Normals != nil {
		C.free(unsafe.Pointer(m.Normals))
		m.Normals = nil
	}
	if m.Texcoords != nil {
		C.free(unsafe.Pointer(m.Texcoords))
		m.Texcoords = nil
	}
}

// SetCamera abre o modo 3D do frame com a câmera calculada pela corrida.
func (r *Renderer) SetCamera(c camera.State) {
	if r.in3D {
		rl.EndMode3D()
	}
	r.camera.Position = toVector3(c.Eye)
	r.camera.Target = toVector3(c.Target)
	r.camera.Up = toVector3(c.Up)
	if c.Fovy > 0 {
		r.camera.Fovy = c.Fovy
	}
	r.DrawCalls = 0
	r.Triangles = 0

	rl.BeginMode3D(r.camera)
	r.in3D = true
}

// Draw desenha uma instância. Malhas que não estão na GPU são ignoradas.
func (r *Renderer) Draw(d race.DrawInstruction) {
	model, ok := r.models[d.Mesh]
	if !ok || model.MaterialCount == 0 {
		return
	}

	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	if d.Unlit {
		materials[0].Shader = r.unlitShader
	} else {
		materials[0].Shader = r.litShader
	}
	if tex, ok := r.Textures[d.Texture]; ok {
		rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, tex)
	}

	model.Transform = toMatrix(d.Transform)
	if r.Wireframe {
		rl.DrawModelWires(model, rl.Vector3{}, 1, rl.White)
	} else {
		rl.DrawModel(model, rl.Vector3{}, 1, rl.White)
	}
	r.DrawCalls++
	r.Triangles += d.Buffer.TriangleCount()
}

// EndFrame fecha o modo 3D aberto por SetCamera.
func (r *Renderer) EndFrame() {
	if r.in3D {
		rl.EndMode3D()
		r.in3D = false
	}
}

// Unload libera modelos, texturas e shaders.
func (r *Renderer) Unload() {
	for name, m := range r.models {
		rl.UnloadModel(m)
		delete(r.models, name)
	}
	for name, tex := range r.Textures {
		rl.UnloadTexture(tex)
		delete(r.Textures, name)
	}
	if r.litShader.ID != 0 {
		rl.UnloadShader(r.litShader)
	}
	if r.unlitShader.ID != 0 {
		rl.UnloadShader(r.unlitShader)
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// toMatrix converte de mgl32 (coluna-maior, índice col*4+linha) para rl.Matrix.
// Os campos Mn do raylib seguem a mesma numeração.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
