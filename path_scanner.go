package canvas

// PathScanner iterates over the commands of a path.
type PathScanner struct {
	p     *Path
	i     int // index into p.cmds
	j     int // index into p.d of the current command's values
	pos   Point
	start Point
}

// Scanner returns a path scanner.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p: p, i: -1}
}

// Scan scans a new path segment and should be called before the other methods.
func (s *PathScanner) Scan() bool {
	if len(s.p.cmds) <= s.i+1 {
		return false
	}
	if 0 <= s.i {
		s.pos = s.End()
		s.j += cmdLen(s.p.cmds[s.i])
	}
	s.i++
	if s.p.cmds[s.i] == MoveToCmd {
		s.start = Point{s.p.d[s.j], s.p.d[s.j+1]}
	}
	return true
}

// Cmd returns the current path segment command.
func (s *PathScanner) Cmd() PathCmd {
	return s.p.cmds[s.i]
}

// Values returns the current path segment values.
func (s *PathScanner) Values() []float64 {
	return s.p.d[s.j : s.j+cmdLen(s.p.cmds[s.i])]
}

// Start returns the current path segment start position.
func (s *PathScanner) Start() Point {
	return s.pos
}

// CP1 returns the first control point for quadratic and cubic Béziers.
func (s *PathScanner) CP1() Point {
	if cmd := s.p.cmds[s.i]; cmd != QuadToCmd && cmd != CubeToCmd {
		panic("must be quadratic or cubic Bézier")
	}
	return Point{s.p.d[s.j], s.p.d[s.j+1]}
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.p.cmds[s.i] != CubeToCmd {
		panic("must be cubic Bézier")
	}
	return Point{s.p.d[s.j+2], s.p.d[s.j+3]}
}

// End returns the current path segment end position. For a close command this is the start of the subpath.
func (s *PathScanner) End() Point {
	n := cmdLen(s.p.cmds[s.i])
	if n == 0 {
		return s.start
	}
	return Point{s.p.d[s.j+n-2], s.p.d[s.j+n-1]}
}
