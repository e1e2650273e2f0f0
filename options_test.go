package vidcap

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.color != ColorRGBA {
		t.Errorf("default color = %v, want RGBA", o.color)
	}
	if o.engine != EngineAuto {
		t.Errorf("default engine = %v, want Auto", o.engine)
	}
	if o.pixmap != nil {
		t.Error("default pixmap is not nil")
	}
}

func TestWithColor(t *testing.T) {
	o := defaultOptions()
	WithColor(ColorLLLA)(&o)
	if o.color != ColorLLLA {
		t.Errorf("color = %v, want LLLA", o.color)
	}
}

func TestWithEngine(t *testing.T) {
	o := defaultOptions()
	WithEngine(EngineRaster)(&o)
	if o.engine != EngineRaster {
		t.Errorf("engine = %v, want Raster", o.engine)
	}
}

func TestWithPixmap(t *testing.T) {
	pm := NewPixmap(2, 2)
	o := defaultOptions()
	WithPixmap(pm)(&o)
	if o.pixmap != pm {
		t.Error("pixmap option not applied")
	}
}
