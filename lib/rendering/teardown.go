package rendering

// teardownList collects release functions as GL objects get acquired.
type teardownList []func()

func (t *teardownList) acquire(release func()) {
	*t = append(*t, release)
}

func (t *teardownList) release() {
	for i := len(*t) - 1; i >= 0; i-- {
		(*t)[i]()
	}
	*t = nil
}
