package assets

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"VirtuaRacing/shared/assetcache"
	"VirtuaRacing/shared/mesh"
	"VirtuaRacing/shared/route"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// MeshCache guarda malhas já processadas. *assetcache.Cache satisfaz a interface.
type MeshCache interface {
	Get(key string) (*mesh.Buffer, bool)
	Put(key, name string, buf *mesh.Buffer) error
}

// Manager carrega modelos, texturas e a rota a partir de um diretório de assets.
// Falhas de carga são registradas e substituídas por um asset vazio: a corrida roda mesmo
// sem algum modelo.
type Manager struct {
	fs       afero.Fs
	dir      string
	cache    MeshCache
	meshes   map[string]*mesh.Buffer
	textures map[string]string
	log      zerolog.Logger
}

// NewManager cria o gerenciador. cache pode ser nil.
func NewManager(fs afero.Fs, dir string, cache MeshCache, log zerolog.Logger) *Manager {
	return &Manager{
		fs:       fs,
		dir:      dir,
		cache:    cache,
		meshes:   make(map[string]*mesh.Buffer),
		textures: make(map[string]string),
		log:      log,
	}
}

func (m *Manager) resolve(file string) string {
	if filepath.IsAbs(file) || m.dir == "" {
		return file
	}
	return filepath.Join(m.dir, file)
}

// LoadMesh lê e processa um arquivo de modelo, consultando o cache antes de parsear.
// Em caso de erro a malha registrada é mesh.Empty() e o erro é devolvido.
func (m *Manager) LoadMesh(name, file string) (*mesh.Buffer, error) {
	full := m.resolve(file)
	data, err := afero.ReadFile(m.fs, full)
	if err != nil {
		m.log.Error().Err(err).Str("mesh", name).Str("file", full).Msg("falha ao ler modelo")
		m.meshes[name] = mesh.Empty()
		return m.meshes[name], fmt.Errorf("falha ao ler modelo %s: %w", name, err)
	}

	var key string
	if m.cache != nil {
		key = assetcache.Key(data)
		if buf, ok := m.cache.Get(key); ok {
			m.log.Debug().Str("mesh", name).Int("triangles", buf.TriangleCount()).Msg("modelo vindo do cache")
			m.meshes[name] = buf
			return buf, nil
		}
	}

	buf, err := mesh.Load(bytes.NewReader(data))
	if err != nil {
		m.log.Error().Err(err).Str("mesh", name).Str("file", full).Msg("modelo inválido")
		m.meshes[name] = buf
		return buf, fmt.Errorf("falha ao processar modelo %s: %w", name, err)
	}

	if m.cache != nil {
		if err := m.cache.Put(key, name, buf); err != nil {
			m.log.Warn().Err(err).Str("mesh", name).Msg("não foi possível gravar no cache")
		}
	}

	m.log.Info().Str("mesh", name).Int("triangles", buf.TriangleCount()).Bool("normals", buf.HasNormals()).Msg("modelo carregado")
	m.meshes[name] = buf
	return buf, nil
}

// LoadMeshes carrega todos os modelos (nome -> arquivo) em ordem alfabética e junta os erros.
func (m *Manager) LoadMeshes(files map[string]string) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if _, err := m.LoadMesh(name, files[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadRoute lê o traçado. Em caso de erro devolve a rota vazia junto com o erro.
func (m *Manager) LoadRoute(file string, opts route.Options) (*route.Route, error) {
	full := m.resolve(file)
	f, err := m.fs.Open(full)
	if err != nil {
		m.log.Error().Err(err).Str("file", full).Msg("falha ao abrir rota")
		return route.New(nil), fmt.Errorf("falha ao abrir rota: %w", err)
	}
	defer f.Close()

	r, err := route.Load(f, opts)
	if err != nil {
		m.log.Error().Err(err).Str("file", full).Msg("rota inválida")
		return r, fmt.Errorf("falha ao carregar rota %s: %w", full, err)
	}
	m.log.Info().Int("waypoints", r.Len()).Bool("swapYZ", opts.SwapYZ).Msg("rota carregada")
	return r, nil
}

// SetTextures registra os arquivos de textura por nome.
func (m *Manager) SetTextures(files map[string]string) {
	for name, file := range files {
		m.textures[name] = file
	}
}

// ReadTexture devolve os bytes da imagem e a extensão (".png") para o decodificador.
func (m *Manager) ReadTexture(name string) ([]byte, string, error) {
	file, ok := m.textures[name]
	if !ok {
		return nil, "", fmt.Errorf("textura desconhecida: %q", name)
	}
	full := m.resolve(file)
	data, err := afero.ReadFile(m.fs, full)
	if err != nil {
		return nil, "", fmt.Errorf("falha ao ler textura %s: %w", name, err)
	}
	return data, strings.ToLower(filepath.Ext(full)), nil
}

// TextureNames retorna os nomes registrados em ordem alfabética.
func (m *Manager) TextureNames() []string {
	names := make([]string, 0, len(m.textures))
	for name := range m.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mesh retorna a malha carregada com o nome dado, ou nil.
func (m *Manager) Mesh(name string) *mesh.Buffer {
	return m.meshes[name]
}

// Meshes retorna uma cópia do mapa de malhas carregadas.
func (m *Manager) Meshes() map[string]*mesh.Buffer {
	out := make(map[string]*mesh.Buffer, len(m.meshes))
	for k, v := range m.meshes {
		out[k] = v
	}
	return out
}
