package gridpath

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current     Point
	Distances   []int
	FrontierLen int
	Done        bool
	Found       bool
	Distance    int
	Path        []int
	StepIndex   int
}

// Stepper runs a search one expansion at a time so that callers can observe
// the distance map as it fills in. Driving a Stepper to completion yields the
// same distance and path as FindPath.
type Stepper struct {
	search    *search
	stepCount int
	current   Point
	path      []int
}

// NewStepper validates the endpoints and prepares a search from startNode to
// goalNode.
func NewStepper(grid *Grid, startNode, goalNode Point) (*Stepper, error) {
	s, err := newSearch(grid, startNode, goalNode)
	if err != nil {
		return nil, err
	}
	return &Stepper{search: s, current: startNode}, nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.search.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, further calls return the final snapshot again.
func (s *Stepper) Step() StepSnapshot {
	if s.search.done {
		return s.snapshot()
	}

	s.stepCount++
	if current, expanded := s.search.advance(); expanded || s.search.found {
		s.current = current
	}
	if s.search.found && s.path == nil {
		s.path = make([]int, s.search.distance)
		s.search.writePath(s.path)
	}
	return s.snapshot()
}

func (s *Stepper) snapshot() StepSnapshot {
	distances := make([]int, len(s.search.distances))
	copy(distances, s.search.distances)
	var path []int
	if s.path != nil {
		path = make([]int, len(s.path))
		copy(path, s.path)
	}
	return StepSnapshot{
		Current:     s.current,
		Distances:   distances,
		FrontierLen: s.search.openSet.Len(),
		Done:        s.search.done,
		Found:       s.search.found,
		Distance:    s.search.distance,
		Path:        path,
		StepIndex:   s.stepCount,
	}
}
