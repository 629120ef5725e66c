package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/orb-arena/constant"
)

// Preset names
const (
	PresetClassic = "classic"
	PresetSimple  = "simple"
)

// ErrInvalidTuning is wrapped by every validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// ErrUnknownPreset is returned for preset names other than classic or simple
var ErrUnknownPreset = errors.New("unknown preset")

// Tuning holds every gameplay constant of a match
// Zero values are not meaningful; start from Preset and override
type Tuning struct {
	StartingLives int `yaml:"starting_lives"`
	OrbReward     int `yaml:"orb_reward"`

	OrbBaseCount int `yaml:"orb_base_count"`
	OrbCountStep int `yaml:"orb_count_step"`
	OrbBaseSpeed int `yaml:"orb_base_speed"`
	OrbSpeedStep int `yaml:"orb_speed_step"`

	BombInitialCount int     `yaml:"bomb_initial_count"`
	BombBaseSpeed    int     `yaml:"bomb_base_speed"`
	BombSpeedStep    int     `yaml:"bomb_speed_step"`
	BombAcceleration float64 `yaml:"bomb_acceleration"`

	PlayerSpeed    float64 `yaml:"player_speed"`
	KnockbackScale float64 `yaml:"knockback_scale"`
	KnockbackDecay float64 `yaml:"knockback_decay"`

	SpawnMargin int `yaml:"spawn_margin"`

	InvincibilityDuration time.Duration `yaml:"invincibility_duration"`
	WaveMessageDuration   time.Duration `yaml:"wave_message_duration"`
	ShakeDuration         time.Duration `yaml:"shake_duration"`
	ShakeIntensity        float64       `yaml:"shake_intensity"`
}

// Classic returns the default parameter set
func Classic() Tuning {
	return Tuning{
		StartingLives:         constant.StartingLives,
		OrbReward:             constant.OrbReward,
		OrbBaseCount:          constant.OrbBaseCount,
		OrbCountStep:          constant.OrbCountStep,
		OrbBaseSpeed:          constant.OrbBaseSpeed,
		OrbSpeedStep:          constant.OrbSpeedStep,
		BombInitialCount:      constant.BombInitialCount,
		BombBaseSpeed:         constant.BombBaseSpeed,
		BombSpeedStep:         constant.BombSpeedStep,
		BombAcceleration:      constant.BombAcceleration,
		PlayerSpeed:           constant.PlayerSpeed,
		KnockbackScale:        constant.KnockbackScale,
		KnockbackDecay:        constant.ImpulseDecayRate,
		SpawnMargin:           constant.SpawnMargin,
		InvincibilityDuration: constant.InvincibilityDuration,
		WaveMessageDuration:   constant.WaveMessageDuration,
		ShakeDuration:         constant.ShakeDuration,
		ShakeIntensity:        constant.ShakeIntensity,
	}
}

// Simple returns the alternate build: four bombs at a fixed speed
func Simple() Tuning {
	t := Classic()
	t.BombInitialCount = constant.SimpleBombInitialCount
	t.BombBaseSpeed = constant.SimpleBombSpeed
	t.BombSpeedStep = 0
	return t
}

// Preset resolves a preset by name; empty selects classic
func Preset(name string) (Tuning, error) {
	switch name {
	case "", PresetClassic:
		return Classic(), nil
	case PresetSimple:
		return Simple(), nil
	default:
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// OrbCount returns the orb batch size for a wave
func (t *Tuning) OrbCount(wave int) int {
	return t.OrbBaseCount + t.OrbCountStep*(wave-1)
}

// OrbSpeed returns the per-axis orb speed bound for a wave
func (t *Tuning) OrbSpeed(wave int) int {
	return t.OrbBaseSpeed + t.OrbSpeedStep*(wave-1)
}

// BombSpeed returns the per-axis bomb speed bound for a wave
func (t *Tuning) BombSpeed(wave int) int {
	return t.BombBaseSpeed + t.BombSpeedStep*(wave-1)
}

// Validate rejects values that would break match invariants
func (t *Tuning) Validate() error {
	switch {
	case t.StartingLives < 1:
		return fmt.Errorf("%w: starting_lives must be >= 1, got %d", ErrInvalidTuning, t.StartingLives)
	case t.OrbReward < 0:
		return fmt.Errorf("%w: orb_reward must be >= 0, got %d", ErrInvalidTuning, t.OrbReward)
	case t.OrbBaseCount < 1:
		return fmt.Errorf("%w: orb_base_count must be >= 1, got %d", ErrInvalidTuning, t.OrbBaseCount)
	case t.OrbCountStep < 0:
		return fmt.Errorf("%w: orb_count_step must be >= 0, got %d", ErrInvalidTuning, t.OrbCountStep)
	case t.OrbBaseSpeed < 0 || t.OrbSpeedStep < 0:
		return fmt.Errorf("%w: orb speeds must be >= 0", ErrInvalidTuning)
	case t.BombInitialCount < 0:
		return fmt.Errorf("%w: bomb_initial_count must be >= 0, got %d", ErrInvalidTuning, t.BombInitialCount)
	case t.BombBaseSpeed < 0 || t.BombSpeedStep < 0:
		return fmt.Errorf("%w: bomb speeds must be >= 0", ErrInvalidTuning)
	case t.BombAcceleration < 1:
		return fmt.Errorf("%w: bomb_acceleration must be >= 1, got %v", ErrInvalidTuning, t.BombAcceleration)
	case t.PlayerSpeed <= 0:
		return fmt.Errorf("%w: player_speed must be > 0, got %v", ErrInvalidTuning, t.PlayerSpeed)
	case t.KnockbackScale < 0 || t.KnockbackDecay < 0:
		return fmt.Errorf("%w: knockback values must be >= 0", ErrInvalidTuning)
	case t.SpawnMargin < 0 || 2*t.SpawnMargin >= constant.ArenaHeight:
		return fmt.Errorf("%w: spawn_margin must be in [0, %d), got %d", ErrInvalidTuning, constant.ArenaHeight/2, t.SpawnMargin)
	case t.InvincibilityDuration <= 0:
		return fmt.Errorf("%w: invincibility_duration must be > 0", ErrInvalidTuning)
	case t.WaveMessageDuration <= 0:
		return fmt.Errorf("%w: wave_message_duration must be > 0", ErrInvalidTuning)
	case t.ShakeDuration < 0 || t.ShakeIntensity < 0:
		return fmt.Errorf("%w: shake values must be >= 0", ErrInvalidTuning)
	}
	return nil
}
