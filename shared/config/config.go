package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixa as variáveis de ambiente que sobrescrevem o arquivo (VR_RACE_SPEED etc).
const EnvPrefix = "VR"

// Config armazena as configurações do VirtuaRacing.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Log     LogConfig     `mapstructure:"log"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Race    RaceConfig    `mapstructure:"race"`
	Scenery SceneryConfig `mapstructure:"scenery"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Light   LightConfig   `mapstructure:"light"`
	Debug   DebugConfig   `mapstructure:"debug"`
}

// WindowConfig configura a janela do raylib.
type WindowConfig struct {
	Width      int32  `mapstructure:"width"`
	Height     int32  `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	TargetFPS  int32  `mapstructure:"targetFps"`
}

// LogConfig configura o zerolog. File vazio desliga o log em arquivo.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// AssetsConfig aponta para os arquivos de modelo, texturas e rota, relativos a Dir.
type AssetsConfig struct {
	Dir      string            `mapstructure:"dir"`
	Route    string            `mapstructure:"route"`
	SwapYZ   bool              `mapstructure:"swapYZ"`
	Meshes   map[string]string `mapstructure:"meshes"`
	Textures map[string]string `mapstructure:"textures"`
}

// CacheConfig configura o cache SQLite de malhas processadas.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// RivalConfig posiciona um carro adversário relativo ao jogador.
type RivalConfig struct {
	Offset  float32 `mapstructure:"offset"`  // Progresso à frente (positivo) ou atrás
	Lateral float32 `mapstructure:"lateral"` // Deslocamento lateral em unidades de mundo
}

// RaceConfig agrupa a simulação por tick.
type RaceConfig struct {
	Speed          float32       `mapstructure:"speed"`
	RenderDistance float32       `mapstructure:"renderDistance"`
	WheelSpin      float32       `mapstructure:"wheelSpin"`
	ToeIn          float32       `mapstructure:"toeIn"`
	Wrap           string        `mapstructure:"wrap"`
	SteerGain      float32       `mapstructure:"steerGain"`
	MaxSteer       float32       `mapstructure:"maxSteer"`
	Smoothing      float32       `mapstructure:"smoothing"`
	Response       float32       `mapstructure:"response"`
	LapHistory     int           `mapstructure:"lapHistory"`
	Seed           uint64        `mapstructure:"seed"`
	Rivals         []RivalConfig `mapstructure:"rivals"`
}

// SceneryConfig controla a distribuição de árvores e arquibancadas.
type SceneryConfig struct {
	Stride      int     `mapstructure:"stride"`
	RightChance float32 `mapstructure:"rightChance"`
	RightMin    float32 `mapstructure:"rightMin"`
	RightSpread float32 `mapstructure:"rightSpread"`
	LeftChance  float32 `mapstructure:"leftChance"`
	LeftMin     float32 `mapstructure:"leftMin"`
	LeftSpread  float32 `mapstructure:"leftSpread"`
	StandChance float32 `mapstructure:"standChance"`
}

// CameraConfig configura o enquadramento inicial.
type CameraConfig struct {
	Mode           string  `mapstructure:"mode"`
	ChaseDistance  float32 `mapstructure:"chaseDistance"`
	ChaseHeight    float32 `mapstructure:"chaseHeight"`
	TargetHeight   float32 `mapstructure:"targetHeight"`
	OverheadHeight float32 `mapstructure:"overheadHeight"`
	Fovy           float32 `mapstructure:"fovy"`
}

// LightConfig descreve o sol direcional.
type LightConfig struct {
	Direction []float32 `mapstructure:"direction"`
	Ambient   float32   `mapstructure:"ambient"`
	Diffuse   float32   `mapstructure:"diffuse"`
}

// DebugConfig liga overlays de desenvolvimento.
type DebugConfig struct {
	ShowInfo  bool `mapstructure:"showInfo"`
	Wireframe bool `mapstructure:"wireframe"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "VirtuaRacing")
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.targetFps", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "vr_debug.log")

	v.SetDefault("assets.dir", "assets")
	v.SetDefault("assets.route", "route.obj")
	v.SetDefault("assets.swapYZ", true)
	v.SetDefault("assets.meshes", map[string]any{
		"road":    "road.obj",
		"sky":     "sky.obj",
		"chassis": "chassis.obj",
		"wheel":   "wheel.obj",
		"tree":    "tree.obj",
		"stand":   "stand.obj",
	})
	v.SetDefault("assets.textures", map[string]any{
		"atlas": "atlas.png",
		"sky":   "sky.png",
	})

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "cache/meshes.db")

	v.SetDefault("race.speed", 1.25)
	v.SetDefault("race.renderDistance", 45)
	v.SetDefault("race.wheelSpin", 30)
	v.SetDefault("race.toeIn", 7)
	v.SetDefault("race.wrap", "reset")
	v.SetDefault("race.steerGain", 7.5)
	v.SetDefault("race.maxSteer", 50)
	v.SetDefault("race.smoothing", 0.8)
	v.SetDefault("race.response", 0.2)
	v.SetDefault("race.lapHistory", 8)
	v.SetDefault("race.seed", 0)
	v.SetDefault("race.rivals", []map[string]any{
		{"offset": 25, "lateral": -3.5},
		{"offset": -15, "lateral": 3.5},
	})

	v.SetDefault("scenery.stride", 7)
	v.SetDefault("scenery.rightChance", 0.3)
	v.SetDefault("scenery.rightMin", 7)
	v.SetDefault("scenery.rightSpread", 9)
	v.SetDefault("scenery.leftChance", 0.6)
	v.SetDefault("scenery.leftMin", 8)
	v.SetDefault("scenery.leftSpread", 10)
	v.SetDefault("scenery.standChance", 0.5)

	v.SetDefault("camera.mode", "chase")
	v.SetDefault("camera.chaseDistance", 16)
	v.SetDefault("camera.chaseHeight", 9.5)
	v.SetDefault("camera.targetHeight", 6.5)
	v.SetDefault("camera.overheadHeight", 85)
	v.SetDefault("camera.fovy", 60)

	v.SetDefault("light.direction", []float32{50, 200, 50})
	v.SetDefault("light.ambient", 0.4)
	v.SetDefault("light.diffuse", 1.0)

	v.SetDefault("debug.showInfo", true)
	v.SetDefault("debug.wireframe", false)
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// Os padrões são fixos no código; falhar aqui é erro de programação
		panic(fmt.Sprintf("config: padrões inválidos: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("falha ao decodificar configuração: %w", err)
	}
	return cfg, nil
}

// Load carrega as configurações de um arquivo JSON.
// Se path for vazio ou o arquivo não existir, retorna as configurações padrão
// (ainda sujeitas às variáveis de ambiente VR_*). Um arquivo malformado é erro.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("erro ao ler arquivo de configuração %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("erro ao acessar arquivo de configuração %s: %w", path, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejeita combinações que a simulação não sabe tratar.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Race.Wrap) {
	case "", "reset", "modulo":
	default:
		errs = append(errs, fmt.Errorf("race.wrap desconhecido: %q (use reset ou modulo)", c.Race.Wrap))
	}
	switch strings.ToLower(c.Camera.Mode) {
	case "", "chase", "overhead":
	default:
		errs = append(errs, fmt.Errorf("camera.mode desconhecido: %q (use chase ou overhead)", c.Camera.Mode))
	}
	if c.Scenery.Stride <= 0 {
		errs = append(errs, fmt.Errorf("scenery.stride deve ser positivo, recebido %d", c.Scenery.Stride))
	}
	if c.Race.RenderDistance < 0 {
		errs = append(errs, fmt.Errorf("race.renderDistance não pode ser negativo: %v", c.Race.RenderDistance))
	}
	if c.Race.MaxSteer < 0 {
		errs = append(errs, fmt.Errorf("race.maxSteer não pode ser negativo: %v", c.Race.MaxSteer))
	}
	if len(c.Assets.Meshes) == 0 {
		errs = append(errs, errors.New("assets.meshes vazio"))
	}
	if len(c.Light.Direction) != 3 {
		errs = append(errs, fmt.Errorf("light.direction precisa de 3 componentes, recebido %d", len(c.Light.Direction)))
	}

	return errors.Join(errs...)
}
