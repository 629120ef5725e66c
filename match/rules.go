package match

import (
	"fmt"
	"log"

	"github.com/lixenwraith/orb-arena/audio"
	"github.com/lixenwraith/orb-arena/constant"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/render"
	"github.com/lixenwraith/orb-arena/vmath"
)

// collectOrb handles a player/orb overlap
func (c *Controller) collectOrb(_, orb *physics.Body) {
	if c.match.GameOver || !orb.Active {
		return
	}

	c.world.Deactivate(orb)
	c.match.Score += c.tuning.OrbReward
	c.display.SetText(render.ChannelScore, c.scoreText())
	c.sound.Play(audio.SoundCollect)

	if c.world.CountActive(physics.KindOrb) == 0 {
		c.advanceWave()
	}
}

// advanceWave adds a bomb, speeds up every bomb and replaces the orb pool
func (c *Controller) advanceWave() {
	c.match.Wave++
	wave := c.match.Wave

	// The new bomb is accelerated along with the rest
	c.spawnBomb(wave)
	for _, b := range c.world.Bodies(physics.KindBomb) {
		b.Vel = vmath.V2FScale(b.Vel, c.tuning.BombAcceleration)
	}

	c.world.RemoveKind(physics.KindOrb)
	c.spawnOrbs(wave)

	text := fmt.Sprintf("WAVE %d", wave)
	c.setMessage(text)
	c.messageTimer = c.timers.After(c.tuning.WaveMessageDuration, func() {
		c.messageTimer = 0
		c.setMessage("")
	})
	c.sound.Play(audio.SoundWave)
	log.Printf("match %s: wave %d, score %d, %d bombs", c.match.ID, wave, c.match.Score, c.world.CountActive(physics.KindBomb))
}

// hitBomb handles a player/bomb overlap; invincibility limits it to one life per contact
func (c *Controller) hitBomb(player, bomb *physics.Body) {
	if c.match.GameOver || c.match.Invincible {
		return
	}

	c.match.Invincible = true
	knock := vmath.V2FScale(vmath.V2FSub(player.Pos, bomb.Pos), c.tuning.KnockbackScale)
	physics.SetImpulse(player, knock)

	c.match.Lives--
	c.display.SetText(render.ChannelLives, c.livesText())
	player.ApplyTint(constant.ColorHitTint)
	c.display.Shake(c.tuning.ShakeDuration, c.tuning.ShakeIntensity)
	c.sound.Play(audio.SoundHit)
	log.Printf("match %s: hit, %d lives left", c.match.ID, c.match.Lives)

	if c.machine.HandleEvent(c, EventLivesOut) {
		return
	}

	c.timers.After(c.tuning.InvincibilityDuration, func() {
		c.match.Invincible = false
		c.player.ClearTint()
	})
}

func (c *Controller) spawnOrbs(wave int) {
	speed := c.tuning.OrbSpeed(wave)
	for i := c.tuning.OrbCount(wave); i > 0; i-- {
		c.world.Spawn(physics.KindOrb, c.spawnPosition(), c.spawnVelocity(speed))
	}
}

func (c *Controller) spawnBomb(wave int) {
	c.world.Spawn(physics.KindBomb, c.spawnPosition(), c.spawnVelocity(c.tuning.BombSpeed(wave)))
}

// spawnPosition picks integer coordinates inside the arena, SpawnMargin away from every edge
func (c *Controller) spawnPosition() vmath.Vec2F {
	m := c.tuning.SpawnMargin
	return vmath.Vec2F{
		X: float64(c.rng.Between(m, int(c.world.Width)-m)),
		Y: float64(c.rng.Between(m, int(c.world.Height)-m)),
	}
}

// spawnVelocity picks each axis independently in [-speed, speed]
func (c *Controller) spawnVelocity(speed int) vmath.Vec2F {
	return vmath.Vec2F{
		X: float64(c.rng.Between(-speed, speed)),
		Y: float64(c.rng.Between(-speed, speed)),
	}
}
