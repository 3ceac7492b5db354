package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"beastsim/internal/config"
)

func TestBeast_AmbushAlwaysStrikesThrice(t *testing.T) {
	rules := config.DefaultRules()
	b := NewBeast(rules, nil)
	pool := NewRoster(1, nil, rules)
	src := &scriptSource{ints: []int{0}}

	kills := b.Attack(pool, true, src)
	assert.Equal(t, 1, kills)
	assert.Equal(t, 3, src.nInt)
	assert.False(t, pool[0].Alive())
}

func TestBeast_RoundStrikesCappedByPool(t *testing.T) {
	rules := config.DefaultRules()
	b := NewBeast(rules, nil)
	src := &scriptSource{ints: []int{0, 1, 2, 3}}

	assert.Equal(t, 2, b.Attack(NewRoster(2, nil, rules), false, src))
	assert.Equal(t, 2, src.nInt)

	src = &scriptSource{ints: []int{0, 1, 2, 3}}
	assert.Equal(t, 3, b.Attack(NewRoster(5, nil, rules), false, src))
	assert.Equal(t, 3, src.nInt)
}

func TestBeast_StrikesCanLandOnTheFallen(t *testing.T) {
	rules := config.DefaultRules()
	b := NewBeast(rules, nil)
	pool := NewRoster(3, nil, rules)
	// three strikes all land on defender 1
	src := &scriptSource{ints: []int{1}}

	assert.Equal(t, 1, b.Attack(pool, false, src))
	assert.True(t, pool[0].Alive())
	assert.False(t, pool[1].Alive())
	assert.True(t, pool[2].Alive())
}

func TestBeast_EmptyPool(t *testing.T) {
	b := NewBeast(config.DefaultRules(), nil)
	assert.Equal(t, 0, b.Attack(nil, true, &scriptSource{}))
}

func TestBeast_EnrageLatchesOnce(t *testing.T) {
	b := NewBeast(config.DefaultRules(), nil)
	assert.False(t, b.ReceiveDamage(970))
	assert.False(t, b.Enraged)
	assert.Equal(t, 1.0, b.Aggression)

	assert.True(t, b.ReceiveDamage(6))
	assert.True(t, b.Enraged)
	assert.Equal(t, 1.5, b.Aggression)
	assert.Equal(t, 24.0, b.Health)

	assert.False(t, b.ReceiveDamage(50))
	assert.True(t, b.Enraged)
	assert.Equal(t, 1.5, b.Aggression)
}

func TestBeast_EnragedStrikesHitHarder(t *testing.T) {
	rules := config.DefaultRules()
	b := NewBeast(rules, nil)
	b.ReceiveDamage(990)
	rules.DefenderHealth = 200
	pool := NewRoster(1, nil, rules)
	b.Attack(pool, false, &scriptSource{ints: []int{0}})
	assert.Equal(t, 50.0, pool[0].Health)
}

func TestBeast_FatigueSapsStrengthOnceSpent(t *testing.T) {
	b := NewBeast(config.DefaultRules(), nil)
	for i := 0; i < 50; i++ {
		assert.False(t, b.Fatigue())
	}
	assert.Equal(t, 0.0, b.Stamina)
	assert.Equal(t, 100.0, b.Strength)

	assert.True(t, b.Fatigue())
	assert.Equal(t, -2.0, b.Stamina)
	assert.InDelta(t, 95.0, b.Strength, 1e-9)

	assert.True(t, b.Fatigue())
	assert.InDelta(t, 90.25, b.Strength, 1e-9)
}

func TestBeast_EmitsStrikes(t *testing.T) {
	rules := config.DefaultRules()
	var events []Event
	b := NewBeast(rules, func(ev Event) { events = append(events, ev) })
	b.Attack(NewRoster(1, nil, rules), true, &scriptSource{ints: []int{0}})

	assert.Len(t, events, 3)
	assert.Equal(t, true, events[0].Payload["killed"])
	assert.Equal(t, true, events[1].Payload["wasted"])
}
