// Package route carrega o traçado da pista: uma sequência cíclica de waypoints 3D.
package route

import (
	"fmt"
	"io"

	"VirtuaRacing/shared/pkg/objtext"
	"VirtuaRacing/shared/util"
)

// MinPoints é o mínimo de waypoints para que a rota tenha ao menos um segmento.
const MinPoints = 2

// DegenerateRouteError indica uma rota com menos de MinPoints waypoints.
type DegenerateRouteError struct {
	Points int
}

func (e *DegenerateRouteError) Error() string {
	return fmt.Sprintf("rota degenerada: %d waypoints (mínimo %d)", e.Points, MinPoints)
}

// Options controla a leitura do arquivo de rota.
type Options struct {
	// SwapYZ lê o segundo e o terceiro campo como (z, y). O Blender exporta com Z para cima,
	// a cena usa Y para cima.
	SwapYZ bool
}

// Route é imutável após a construção. O índice é cíclico.
type Route struct {
	points []util.Vector3
}

// New cria uma rota a partir de uma cópia dos pontos.
func New(points []util.Vector3) *Route {
	cp := make([]util.Vector3, len(points))
	copy(cp, points)
	return &Route{points: cp}
}

// Load lê apenas os registros "v" da descrição. Em caso de erro devolve uma rota vazia
// (nunca nil) junto com o erro, para que o loop de frames continue vivo.
func Load(r io.Reader, opts Options) (*Route, error) {
	var points []util.Vector3
	err := objtext.Scan(r, func(rec objtext.Record) error {
		if rec.Kind != objtext.KindPosition {
			return nil
		}
		f, err := rec.Floats(3)
		if err != nil {
			return err
		}
		p := util.Vector3{f[0], f[1], f[2]}
		if opts.SwapYZ {
			p = util.Vector3{f[0], f[2], f[1]}
		}
		points = append(points, p)
		return nil
	})
	if err != nil {
		return &Route{}, err
	}
	if len(points) < MinPoints {
		return &Route{}, &objtext.ParseError{
			Kind:   objtext.KindPosition,
			Reason: "waypoints insuficientes",
			Err:    &DegenerateRouteError{Points: len(points)},
		}
	}
	return &Route{points: points}, nil
}

// Len retorna o número de waypoints.
func (r *Route) Len() int {
	if r == nil {
		return 0
	}
	return len(r.points)
}

// Degenerate indica se a rota não tem segmentos utilizáveis.
func (r *Route) Degenerate() bool {
	return r.Len() < MinPoints
}

// PointAt retorna o waypoint de índice i módulo Len (aceita negativos).
// Numa rota vazia retorna a origem.
func (r *Route) PointAt(i int) util.Vector3 {
	n := r.Len()
	if n == 0 {
		return util.Vector3{}
	}
	return r.points[util.WrapIndex(i, n)]
}

// Points retorna uma cópia dos waypoints.
func (r *Route) Points() []util.Vector3 {
	if r == nil {
		return nil
	}
	cp := make([]util.Vector3, len(r.points))
	copy(cp, r.points)
	return cp
}
