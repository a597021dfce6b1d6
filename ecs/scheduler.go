package ecs

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in order and hands back the events queued during
// the pass, leaving the queue empty.
func (s *Scheduler) Update(w *World) []Event {
	if s == nil || w == nil {
		return nil
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	return w.events.Drain()
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
