package lfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeExcludesRequester(t *testing.T) {
	plan := Compose("destiny-2", "u1", []string{"u1", "u2", "u3"}, "need 2 more")

	assert.Equal(t, []string{"u2", "u3"}, plan.Targets)
	assert.Contains(t, plan.Text, "<@u2>")
	assert.Contains(t, plan.Text, "<@u3>")
	assert.Contains(t, plan.Text, "need 2 more")
}

func TestComposeSoleSubscriberIsRequester(t *testing.T) {
	plan := Compose("destiny-2", "u1", []string{"u1"}, "")

	assert.Empty(t, plan.Targets)
	assert.Contains(t, plan.Text, "no one else subscribed")
}

func TestComposeNoSubscribersStillRenders(t *testing.T) {
	plan := Compose("destiny-2", "u1", nil, "")

	assert.Empty(t, plan.Targets)
	assert.Contains(t, plan.Text, "LFG for Destiny 2!")
	assert.Contains(t, plan.Text, "no one else subscribed")
}

func TestComposeDefaultMessage(t *testing.T) {
	plan := Compose("destiny-2", "u1", []string{"u2"}, "")
	assert.Contains(t, plan.Text, DefaultMessage)
}

func TestComposeMentionsRequesterAsStarter(t *testing.T) {
	plan := Compose("destiny-2", "u1", []string{"u2"}, "")
	assert.Contains(t, plan.Text, "*Started by <@u1>*")
}

func TestComposeTargetsAreDeterministic(t *testing.T) {
	plan := Compose("destiny-2", "u1", []string{"u9", "u2", "u5"}, "")
	assert.Equal(t, []string{"u2", "u5", "u9"}, plan.Targets)
}
