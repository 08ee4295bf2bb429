package app_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aura24/internal/app"
	"github.com/san-kum/aura24/internal/clock"
	"github.com/san-kum/aura24/internal/models"
	"github.com/san-kum/aura24/internal/sim"
)

var cutoff = time.Date(2026, time.February, 15, 23, 59, 59, 0, time.UTC)

func batch(souls ...models.Soul) []models.Soul {
	for i := range souls {
		souls[i].ID = []string{"soul-0", "soul-1", "soul-2", "soul-3"}[i]
		souls[i].AuraColor = models.AuraPalette[i].Hex
		souls[i].Symbol = models.Symbols[i].ID
	}
	return souls
}

var standardBatch = batch(
	models.Soul{Distance: 3, Affinity: 80, Bearing: 10},
	models.Soul{Distance: 4, Affinity: 20, Bearing: 100},
	models.Soul{Distance: 12, Affinity: 95, Bearing: 200},
	models.Soul{Distance: 5.5, Affinity: 50, Bearing: 300},
)

var _ = Describe("Machine", func() {
	var (
		m           *app.Machine
		transitions []string
	)

	BeforeEach(func() {
		transitions = nil
		m = app.New(clock.NewCountdown(cutoff), app.OnTransition(func(from, to app.Phase) {
			transitions = append(transitions, from.String()+"->"+to.String())
		}))
	})

	discover := func() {
		tok, ok := m.Activate()
		Expect(ok).To(BeTrue())
		Expect(m.CompleteScan(tok, standardBatch)).To(BeTrue())
	}

	It("starts in onboarding with the default profile", func() {
		Expect(m.Phase()).To(Equal(app.PhaseOnboarding))
		Expect(m.Profile()).To(Equal(models.DefaultProfile()))
		Expect(m.Souls()).To(BeEmpty())
	})

	Describe("onboarding", func() {
		It("edits the profile", func() {
			Expect(m.SetAura("#00FF7F")).To(Succeed())
			Expect(m.SetSymbol("wind")).To(Succeed())
			Expect(m.SetIntent(models.IntentFriendship)).To(Succeed())
			Expect(m.SetMood(models.MoodBold)).To(Succeed())

			p := m.Profile()
			Expect(p.AuraColor).To(Equal("#00FF7F"))
			Expect(p.Symbol).To(Equal("wind"))
			Expect(p.Intent).To(Equal(models.IntentFriendship))
			Expect(p.Mood).To(Equal(models.MoodBold))
			Expect(p.ID).To(Equal("me"))
		})

		It("rejects values outside the domains", func() {
			Expect(m.SetAura("#123456")).To(MatchError(models.ErrUnknownAura))
			Expect(m.SetSymbol("skull")).To(MatchError(models.ErrUnknownSymbol))
		})

		It("activates presence into a sensing discovery", func() {
			tok, ok := m.Activate()
			Expect(ok).To(BeTrue())
			Expect(tok).NotTo(BeZero())
			Expect(m.Phase()).To(Equal(app.PhaseDiscovery))
			Expect(m.Searching()).To(BeTrue())
			Expect(transitions).To(Equal([]string{"onboarding->discovery"}))
		})

		It("locks the profile once discovery starts", func() {
			discover()
			Expect(m.SetAura("#00FF7F")).To(MatchError(app.ErrWrongPhase))
		})
	})

	Describe("scanning", func() {
		It("swaps in a whole batch", func() {
			discover()
			Expect(m.Searching()).To(BeFalse())
			Expect(m.Souls()).To(HaveLen(models.BatchSize))
		})

		It("drops stale scan results", func() {
			tok, _ := m.Activate()
			Expect(m.CompleteScan(tok+1, standardBatch)).To(BeFalse())
			Expect(m.Souls()).To(BeEmpty())
			Expect(m.Searching()).To(BeTrue())
		})

		It("drops a scan that lands after the user reset identity", func() {
			tok, _ := m.Activate()
			Expect(m.ResetIdentity()).To(BeTrue())
			Expect(m.CompleteScan(tok, standardBatch)).To(BeFalse())
			Expect(m.Souls()).To(BeEmpty())
		})

		It("refreshes only when idle and nothing is selected", func() {
			tok, _ := m.Activate()
			_, ok := m.Refresh()
			Expect(ok).To(BeFalse(), "already sensing")

			m.CompleteScan(tok, standardBatch)
			Expect(m.Select("soul-0")).To(BeTrue())
			_, ok = m.Refresh()
			Expect(ok).To(BeFalse(), "a soul is selected")

			m.Dismiss()
			next, ok := m.Refresh()
			Expect(ok).To(BeTrue())
			Expect(next).NotTo(Equal(tok))
			Expect(m.Souls()).To(HaveLen(4), "old batch stays until the new one lands")

			fresh := sim.NewSeeded(5, 0).Simulate()
			Expect(m.CompleteScan(next, fresh)).To(BeTrue())
			Expect(m.Souls()).To(Equal(fresh))
		})
	})

	Describe("selection and connect", func() {
		BeforeEach(discover)

		It("enables connect only within five meters", func() {
			Expect(m.Select("soul-0")).To(BeTrue())
			Expect(m.CanConnect()).To(BeTrue())

			Expect(m.Select("soul-3")).To(BeTrue())
			Expect(m.CanConnect()).To(BeFalse())
			_, ok := m.Connect()
			Expect(ok).To(BeFalse())
		})

		It("ignores unknown souls", func() {
			Expect(m.Select("soul-9")).To(BeFalse())
			_, selected := m.Selected()
			Expect(selected).To(BeFalse())
		})

		It("shows the prompt and offers the ritual to a resonant soul", func() {
			m.Select("soul-0")
			tok, ok := m.Connect()
			Expect(ok).To(BeTrue())
			Expect(m.Connecting()).To(BeTrue())
			Expect(m.CanConnect()).To(BeFalse())
			Expect(m.Select("soul-1")).To(BeFalse(), "selection is fixed while connecting")

			Expect(m.CompleteOracle(tok, models.OraclePrompt{Phrase: "Why here?"})).To(BeTrue())
			p, ok := m.Oracle()
			Expect(ok).To(BeTrue())
			Expect(p.Phrase).To(Equal("Why here?"))
			Expect(m.CanEnterRitual()).To(BeTrue())
		})

		It("withholds the ritual below the resonance threshold", func() {
			m.Select("soul-1")
			tok, _ := m.Connect()
			m.CompleteOracle(tok, models.FallbackOracle)
			Expect(m.CanEnterRitual()).To(BeFalse())
			_, ok := m.EnterRitual()
			Expect(ok).To(BeFalse())
		})

		It("dismiss clears selection and prompt", func() {
			m.Select("soul-0")
			tok, _ := m.Connect()
			m.CompleteOracle(tok, models.FallbackOracle)

			Expect(m.Dismiss()).To(BeTrue())
			_, selected := m.Selected()
			_, prompted := m.Oracle()
			Expect(selected).To(BeFalse())
			Expect(prompted).To(BeFalse())
			Expect(m.Phase()).To(Equal(app.PhaseDiscovery))
		})

		It("drops a prompt that arrives after dismiss", func() {
			m.Select("soul-0")
			tok, _ := m.Connect()
			m.Dismiss()
			Expect(m.CompleteOracle(tok, models.FallbackOracle)).To(BeFalse())
			_, prompted := m.Oracle()
			Expect(prompted).To(BeFalse())
		})
	})

	Describe("shared ritual", func() {
		var ritualTok app.Token

		BeforeEach(func() {
			discover()
			m.Select("soul-0")
			tok, _ := m.Connect()
			m.CompleteOracle(tok, models.FallbackOracle)
			var ok bool
			ritualTok, ok = m.EnterRitual()
			Expect(ok).To(BeTrue())
		})

		It("enters the ritual with a fresh seven minute timer", func() {
			Expect(m.Phase()).To(Equal(app.PhaseSharedRitual))
			Expect(m.RitualTimer().String()).To(Equal("7:00"))
			_, ready := m.Ritual()
			Expect(ready).To(BeFalse())

			Expect(m.CompleteRitual(ritualTok, models.FallbackRitual)).To(BeTrue())
			r, ready := m.Ritual()
			Expect(ready).To(BeTrue())
			Expect(r.Title).To(Equal("Silent Synchronization"))

			Expect(m.TickRitual()).To(BeTrue())
			Expect(m.RitualTimer().String()).To(Equal("6:59"))
		})

		It("returns to a bare discovery on dismissal", func() {
			epoch := m.Epoch()
			Expect(m.LeaveRitual()).To(BeTrue())
			Expect(m.Phase()).To(Equal(app.PhaseDiscovery))
			Expect(m.Epoch()).NotTo(Equal(epoch))
			_, selected := m.Selected()
			_, prompted := m.Oracle()
			_, ritual := m.Ritual()
			Expect(selected || prompted || ritual).To(BeFalse())
			Expect(m.Souls()).To(HaveLen(4))
			Expect(m.TickRitual()).To(BeFalse())
			Expect(m.CompleteRitual(ritualTok, models.FallbackRitual)).To(BeFalse())
		})

		It("can reset identity from the ritual", func() {
			Expect(m.ResetIdentity()).To(BeTrue())
			Expect(m.Phase()).To(Equal(app.PhaseOnboarding))
			Expect(m.Souls()).To(BeEmpty())
		})
	})

	Describe("countdown", func() {
		It("shows the remaining time rounded down", func() {
			Expect(m.Tick(cutoff.Add(-1500 * time.Millisecond))).To(BeFalse())
			Expect(m.Display()).To(Equal("00:00:01"))
			Expect(m.CountdownRunning()).To(BeTrue())
		})

		It("expires discovery exactly once", func() {
			discover()
			m.Select("soul-0")

			Expect(m.Tick(cutoff)).To(BeTrue())
			Expect(m.Phase()).To(Equal(app.PhaseExpired))
			Expect(m.Display()).To(Equal("00:00:00"))
			Expect(m.Souls()).To(BeEmpty())
			Expect(m.CountdownRunning()).To(BeFalse())

			Expect(m.Tick(cutoff.Add(time.Second))).To(BeFalse())
			Expect(m.Display()).To(Equal("00:00:00"))
			Expect(transitions).To(Equal([]string{"onboarding->discovery", "discovery->expired"}))
		})

		It("keeps running across a reset of identity", func() {
			discover()
			m.Tick(cutoff.Add(-time.Hour))
			m.ResetIdentity()
			Expect(m.Display()).To(Equal("01:00:00"))
			Expect(m.CountdownRunning()).To(BeTrue())
		})

		It("has no way out of expired", func() {
			m.Tick(cutoff)
			_, ok := m.Activate()
			Expect(ok).To(BeFalse())
			Expect(m.ResetIdentity()).To(BeFalse())
			Expect(m.Phase()).To(Equal(app.PhaseExpired))
		})
	})

	Describe("locked", func() {
		It("is terminal", func() {
			m = app.New(clock.NewCountdown(cutoff), app.StartLocked())
			Expect(m.Phase()).To(Equal(app.PhaseLocked))
			_, ok := m.Activate()
			Expect(ok).To(BeFalse())
			Expect(m.Tick(cutoff.Add(time.Hour))).To(BeFalse())
			Expect(m.Phase()).To(Equal(app.PhaseLocked))
		})
	})

	It("walks the whole flow end to end", func() {
		tok, ok := m.Activate()
		Expect(ok).To(BeTrue())

		souls, err := sim.NewSeeded(11, 0).SimulateContext(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(souls).To(HaveLen(4))
		souls[2].Distance = 3
		souls[2].Affinity = 80
		Expect(m.CompleteScan(tok, souls)).To(BeTrue())

		Expect(m.Select(souls[2].ID)).To(BeTrue())
		Expect(m.CanConnect()).To(BeTrue())
		otok, ok := m.Connect()
		Expect(ok).To(BeTrue())
		Expect(m.CompleteOracle(otok, models.FallbackOracle)).To(BeTrue())
		Expect(m.CanEnterRitual()).To(BeTrue())

		Expect(m.Dismiss()).To(BeTrue())
		_, selected := m.Selected()
		_, prompted := m.Oracle()
		Expect(selected).To(BeFalse())
		Expect(prompted).To(BeFalse())
		Expect(m.Phase()).To(Equal(app.PhaseDiscovery))
	})
})
