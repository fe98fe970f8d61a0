package buildenv

// The Execute helpers run fn synchronously on the calling goroutine when the predicate holds and do
// nothing otherwise. A nil fn is ignored.

func runIf(ok bool, fn func()) {
	if ok && fn != nil {
		fn()
	}
}

func (c *Classifier) ExecuteIfDebuggerAttached(fn func()) {
	runIf(c.IsDebuggerAttached(), fn)
}

func (c *Classifier) ExecuteIfDebug(fn func()) {
	runIf(c.IsDebug(), fn)
}

func (c *Classifier) ExecuteIfAdHoc(fn func()) {
	runIf(c.IsAdHoc(), fn)
}

func (c *Classifier) ExecuteIfNotAppStore(fn func()) {
	runIf(!c.IsAppStore(), fn)
}

func (c *Classifier) ExecuteIfAppStore(fn func()) {
	runIf(c.IsAppStore(), fn)
}

func (c *Classifier) ExecuteIfDebugOrAdHoc(fn func()) {
	runIf(c.IsDebugOrAdHoc(), fn)
}

func (c *Classifier) ExecuteIfRelease(fn func()) {
	runIf(c.IsRelease(), fn)
}

func (c *Classifier) ExecuteIfCableBuild(fn func()) {
	runIf(c.IsCableBuild(), fn)
}

// Execute runs onAppStore for App Store installs and onNotAppStore otherwise.
func (c *Classifier) Execute(onNotAppStore, onAppStore func()) {
	appStore := c.IsAppStore()
	runIf(appStore, onAppStore)
	runIf(!appStore, onNotAppStore)
}

// ExecuteByChannel runs debugOrAdHoc for debug and ad-hoc builds and release otherwise.
func (c *Classifier) ExecuteByChannel(debugOrAdHoc, release func()) {
	inHouse := c.IsDebugOrAdHoc()
	runIf(inHouse, debugOrAdHoc)
	runIf(!inHouse, release)
}
