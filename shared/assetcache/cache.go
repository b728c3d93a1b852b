// Package assetcache guarda malhas já processadas num banco SQLite, indexadas pelo hash do
// arquivo de origem. Um .obj que não mudou é decodificado do cache em vez de re-parseado.
package assetcache

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"VirtuaRacing/shared/mesh"

	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CurrentFormatVersion entra na chave: mudar o formato invalida todas as entradas antigas.
const CurrentFormatVersion = 1

// MeshModel representa o esquema do banco de dados para uma malha processada.
type MeshModel struct {
	Key       string `gorm:"primaryKey"` // Hash xxh3 do arquivo de origem + versão do formato
	Name      string `gorm:"index"`
	Data      []byte // mesh.Buffer serializado (wire format protobuf)
	Triangles int
	UpdatedAt time.Time
}

// CacheMetadata armazena informações globais do cache.
type CacheMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Cache é um cache persistente de mesh.Buffer.
type Cache struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open abre (ou cria) o banco de dados SQLite e roda as migrações.
func Open(path string, log zerolog.Logger) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("falha ao criar diretório do cache: %w", err)
		}
	}

	// Logger do GORM silencioso; erros relevantes saem pelo zerolog
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&MeshModel{}, &CacheMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	if err := db.Save(&CacheMetadata{Key: "FormatVersion", Value: strconv.Itoa(CurrentFormatVersion)}).Error; err != nil {
		return nil, fmt.Errorf("falha ao salvar metadados: %w", err)
	}

	log.Info().Str("path", path).Msg("cache de malhas aberto")
	return &Cache{db: db, log: log}, nil
}

// Key calcula a chave de cache para o conteúdo bruto de um arquivo.
func Key(source []byte) string {
	sum := xxh3.Hash128(source).Bytes()
	return fmt.Sprintf("v%d-%s", CurrentFormatVersion, hex.EncodeToString(sum[:]))
}

// Get retorna a malha associada à chave, se existir e decodificar sem erro.
func (c *Cache) Get(key string) (*mesh.Buffer, bool) {
	if key == "" {
		return nil, false
	}
	var model MeshModel
	if err := c.db.Where(&MeshModel{Key: key}).First(&model).Error; err != nil {
		return nil, false
	}

	buf := mesh.Empty()
	if err := buf.UnmarshalBinary(model.Data); err != nil {
		c.log.Warn().Err(err).Str("name", model.Name).Msg("entrada de cache corrompida, ignorando")
		return nil, false
	}
	return buf, true
}

// Put salva (upsert) uma malha processada.
func (c *Cache) Put(key, name string, buf *mesh.Buffer) error {
	data, err := buf.MarshalBinary()
	if err != nil {
		return err
	}

	model := MeshModel{
		Key:       key,
		Name:      name,
		Data:      data,
		Triangles: buf.TriangleCount(),
	}
	if err := c.db.Save(&model).Error; err != nil {
		c.log.Error().Err(err).Str("name", name).Msg("falha ao salvar malha no cache")
		return err
	}
	return nil
}

// Count retorna o número de malhas no cache.
func (c *Cache) Count() (int64, error) {
	var n int64
	err := c.db.Model(&MeshModel{}).Count(&n).Error
	return n, err
}

// Close fecha a conexão com o banco.
func (c *Cache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
