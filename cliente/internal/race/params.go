package race

import (
	"VirtuaRacing/cliente/internal/camera"
	"VirtuaRacing/cliente/internal/kinematics"
	"VirtuaRacing/cliente/internal/scenery"
	"VirtuaRacing/shared/config"
)

// ParamsFromConfig traduz as seções race, scenery e camera da configuração.
func ParamsFromConfig(cfg *config.Config) (Params, error) {
	wrap, err := kinematics.ParseWrapMode(cfg.Race.Wrap)
	if err != nil {
		return Params{}, err
	}
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		Speed:           cfg.Race.Speed,
		RenderDistance:  cfg.Race.RenderDistance,
		WheelSpinFactor: cfg.Race.WheelSpin,
		ToeIn:           cfg.Race.ToeIn,
		Tuning: kinematics.Tuning{
			SteerGain: cfg.Race.SteerGain,
			MaxSteer:  cfg.Race.MaxSteer,
			Smoothing: cfg.Race.Smoothing,
			Response:  cfg.Race.Response,
			Wrap:      wrap,
		},
		Scenery: scenery.Params{
			Stride:      cfg.Scenery.Stride,
			RightChance: cfg.Scenery.RightChance,
			RightMin:    cfg.Scenery.RightMin,
			RightSpread: cfg.Scenery.RightSpread,
			LeftChance:  cfg.Scenery.LeftChance,
			LeftMin:     cfg.Scenery.LeftMin,
			LeftSpread:  cfg.Scenery.LeftSpread,
			StandChance: cfg.Scenery.StandChance,
		},
		Camera: camera.Params{
			ChaseDistance:  cfg.Camera.ChaseDistance,
			ChaseHeight:    cfg.Camera.ChaseHeight,
			TargetHeight:   cfg.Camera.TargetHeight,
			OverheadHeight: cfg.Camera.OverheadHeight,
			Fovy:           cfg.Camera.Fovy,
		},
		CameraMode: mode,
		LapHistory: cfg.Race.LapHistory,
	}
	for _, r := range cfg.Race.Rivals {
		p.Rivals = append(p.Rivals, Rival{Offset: r.Offset, Lateral: r.Lateral})
	}
	return p, nil
}
