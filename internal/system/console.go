package system

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Logging wrappers
func SetGraphicsModeWithLog(l logger) error {
	return logged(l, SetGraphicsMode(), "KD_GRAPHICS set", "KD_GRAPHICS failed")
}

func RestoreTextModeWithLog(l logger) error {
	return logged(l, RestoreTextMode(), "KD_TEXT set", "KD_TEXT failed")
}

func HideCursorWithLog(l logger) error {
	return logged(l, HideCursor(), "cursor hidden", "hide cursor failed")
}

func ShowCursorWithLog(l logger) error {
	return logged(l, ShowCursor(), "cursor shown", "show cursor failed")
}

func logged(l logger, err error, ok, failed string) error {
	if l == nil {
		return err
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
	} else {
		l.Infof("tty", "%s", ok)
	}
	return err
}

// Console switches the display console into graphics mode for the lifetime
// of the app and restores it afterwards.
type Console struct {
	Logger logger
}

func (c Console) Enter() {
	_ = SetGraphicsModeWithLog(c.Logger)
	_ = HideCursorWithLog(c.Logger)
}

func (c Console) Leave() {
	_ = ShowCursorWithLog(c.Logger)
	_ = RestoreTextModeWithLog(c.Logger)
}
