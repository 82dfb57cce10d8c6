// Implements the SoC, the top-level chip simulator: the heterogeneous core
// fleet, the arrival and ready queues, and the four-phase tick loop.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Krish16012003/Janus-Scheduler/sim/trace"
)

// SoC simulates a heterogeneous multi-core chip draining a task workload.
//
// Time advances in whole ticks. Each tick runs four phases in fixed order:
//  1. Admission: tasks whose arrival tick has come move to the ready queue.
//  2. Assignment: finished tasks are reclaimed, then the policy hands
//     waiting tasks to idle cores, performance cores first.
//  3. Execution: every core advances one tick and its power draw is charged.
//  4. The clock increments.
//
// The SoC is single-threaded and deterministic: the same configuration and
// the same injected workload always produce the same final state.
type SoC struct {
	Clock int64

	Cores     []*Core // performance cores first, then efficiency
	Pending   *ArrivalQueue
	ReadyQ    *ReadyQueue
	Completed []*Task

	Policy  AssignmentPolicy
	Metrics *Metrics

	TotalTasks int // tasks injected so far

	trace *trace.SimulationTrace // nil when tracing is off
}

// New creates a SoC from the given configuration. The core fleet is built
// performance-first so assignment scans visit performance cores before
// efficiency cores. No workload is attached; callers inject tasks separately.
func New(cfg Config) (*SoC, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cores := make([]*Core, 0, cfg.PerfCores+cfg.EffCores)
	for i := 0; i < cfg.PerfCores; i++ {
		cores = append(cores, NewCore(i, CorePerformance))
	}
	for i := 0; i < cfg.EffCores; i++ {
		cores = append(cores, NewCore(cfg.PerfCores+i, CoreEfficiency))
	}

	s := &SoC{
		Clock:      0,
		Cores:      cores,
		Pending:    NewArrivalQueue(),
		ReadyQ:     &ReadyQueue{},
		Completed:  make([]*Task, 0),
		Policy:     NewPolicy(cfg.Policy),
		Metrics:    NewMetrics(cores),
		TotalTasks: 0,
	}
	return s, nil
}

// Inject adds tasks to the pending set. Tasks may be injected in any order;
// admission pops them by arrival tick. Tasks whose arrival tick has already
// passed are admitted on the next tick.
func (s *SoC) Inject(tasks []*Task) {
	for _, t := range tasks {
		s.Pending.Schedule(t)
	}
	s.TotalTasks += len(tasks)
	logrus.Debugf("[tick %07d] Injected %d tasks (%d total)", s.Clock, len(tasks), s.TotalTasks)
}

// SetTrace attaches a decision trace. Pass nil to disable recording.
func (s *SoC) SetTrace(t *trace.SimulationTrace) {
	s.trace = t
}

// Tick advances the simulation by exactly one tick: admission, assignment,
// execution, then the clock increment. Safe to call with zero cores or zero
// tasks; the phases simply have nothing to do.
func (s *SoC) Tick() {
	s.admitArrivals()
	s.assignTasks()
	s.advanceCores()
	s.Clock++
}

// Run ticks the simulation until every injected task has completed or the
// tick budget is exhausted, whichever comes first.
func (s *SoC) Run(maxTicks int64) {
	for s.Metrics.CompletedTasks < s.TotalTasks && s.Clock < maxTicks {
		s.Tick()
	}
	logrus.Infof("[tick %07d] Simulation ended (%d/%d tasks completed)",
		s.Clock, s.Metrics.CompletedTasks, s.TotalTasks)
}

// admitArrivals moves every task whose arrival tick has come (or passed)
// from the pending set to the back of the ready queue, in arrival order.
func (s *SoC) admitArrivals() {
	for s.Pending.Len() > 0 && s.Pending.Peek().ArrivalTick <= s.Clock {
		t := s.Pending.PopNext()
		s.ReadyQ.Enqueue(t)
		logrus.Infof("[tick %07d] ==> %s has arrived", s.Clock, t)
	}
}

// assignTasks reclaims finished tasks from every core, then lets the policy
// hand queued tasks to idle cores. Cores are visited in fleet order, so
// performance cores pick before efficiency cores and earlier picks shrink
// the queue seen by later ones.
func (s *SoC) assignTasks() {
	for i, core := range s.Cores {
		t := core.Task()
		if t == nil || !t.IsFinished() {
			continue
		}
		core.Release()
		t.CompletionTick = s.Clock
		s.Completed = append(s.Completed, t)
		s.Metrics.RecordCompletion(t, i)
		logrus.Infof("[tick %07d] <== Task-%d has finished on Core-%d (turnaround %d ticks)",
			s.Clock, t.ID, core.ID, t.Turnaround())
	}

	for _, core := range s.Cores {
		if !core.IsIdle() || s.ReadyQ.Len() == 0 {
			continue
		}

		decision := s.Policy.SelectTask(core, s.ReadyQ.Items())
		if decision.QueueIndex < 0 {
			continue
		}

		depth := s.ReadyQ.Len()
		t := s.ReadyQ.RemoveAt(decision.QueueIndex)
		if t == nil {
			panic(fmt.Sprintf("assignment policy returned invalid index %d (queue depth %d)",
				decision.QueueIndex, depth))
		}

		core.AssignTask(t)
		logrus.Infof("[tick %07d] --> Assigning %s to Core-%d (%s)", s.Clock, t, core.ID, decision.Reason)

		if s.trace != nil {
			s.trace.RecordAssignment(trace.AssignmentRecord{
				Tick:       s.Clock,
				CoreID:     core.ID,
				CoreType:   string(core.Type),
				TaskID:     t.ID,
				Profile:    string(t.Profile),
				Reason:     decision.Reason,
				QueueDepth: depth,
			})
		}
	}
}

// advanceCores ticks every core and charges its power draw for the tick.
// Power and occupancy are sampled after the core advances, so the sample
// reflects the tick's outcome.
func (s *SoC) advanceCores() {
	for i, core := range s.Cores {
		core.Tick()
		s.Metrics.ObserveCore(i, core)
	}
	s.Metrics.ObserveQueueDepth(s.ReadyQ.Len())
}

// FinalStats assembles the end-of-run report from the accumulated metrics.
func (s *SoC) FinalStats() FinalStats {
	return s.Metrics.Collect(s.Clock, s.TotalTasks)
}

// Snapshot captures the current state of every core, in fleet order.
func (s *SoC) Snapshot() []CoreSnapshot {
	snaps := make([]CoreSnapshot, len(s.Cores))
	for i, c := range s.Cores {
		snaps[i] = c.Snapshot()
	}
	return snaps
}

// TaskCensus counts where every injected task currently lives.
type TaskCensus struct {
	Pending   int
	Ready     int
	Bound     int
	Completed int
}

// Total returns the census sum. Always equals the injected task count.
func (tc TaskCensus) Total() int {
	return tc.Pending + tc.Ready + tc.Bound + tc.Completed
}

// Census counts tasks by lifecycle stage at this instant.
func (s *SoC) Census() TaskCensus {
	bound := 0
	for _, c := range s.Cores {
		if !c.IsIdle() {
			bound++
		}
	}
	return TaskCensus{
		Pending:   s.Pending.Len(),
		Ready:     s.ReadyQ.Len(),
		Bound:     bound,
		Completed: len(s.Completed),
	}
}
