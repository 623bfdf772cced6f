package fontblast

import "strings"

import "github.com/gabriel-vasile/mimetype"

// Nested resource containers are recognized by this substring in the
// entry name, at any nesting depth.
const bundleMarker = ".bundle"

// Loads the fonts of a single container directory, then recurses into
// its sub-bundles. Fonts at one level are always processed before the
// level's sub-bundles, in listing order.
func (self *Blaster) blastBundle(fsys bundleFS, dir string, depth int, visited map[string]struct{}, report *Report) {
	key := fsys.Key(dir)
	if _, seen := visited[key]; seen {
		self.logger.Debugf("not descending into %s: already visited", dir)
		return
	}
	visited[key] = struct{}{}

	names, err := fsys.ListDir(dir)
	if err != nil {
		report.skipped(dir, SkipContainer, err)
		self.logger.Warnf("cannot list %s: %s", dir, err.Error())
		return
	}

	descriptors := make([]Descriptor, 0, len(names))
	for _, name := range names {
		if !IsFontFile(name) { continue }
		descriptor, err := NewDescriptor(dir, name)
		if err != nil {
			report.skipped(fsys.Join(dir, name), SkipName, err)
			self.logger.Warnf("skipping %s in %s: %s", name, dir, err.Error())
			continue
		}
		descriptors = append(descriptors, descriptor)
	}
	if len(descriptors) == 0 {
		self.logger.Debugf("no fonts found in %s", dir)
	}
	for _, descriptor := range descriptors {
		self.loadFont(fsys, descriptor, report)
	}

	for _, name := range names {
		if !strings.Contains(name, bundleMarker) { continue }
		if self.maxDepth > 0 && depth+1 > self.maxDepth {
			self.logger.Debugf("not descending into %s: max depth %d reached", name, self.maxDepth)
			continue
		}
		self.blastBundle(fsys, fsys.Join(dir, name), depth+1, visited, report)
	}
}

// Runs one descriptor through resolve → read → decode → register.
// Every failure is terminal for this font only: it is recorded in the
// report, traced, and the blast moves on.
func (self *Blaster) loadFont(fsys bundleFS, descriptor Descriptor, report *Report) {
	location, err := fsys.Resolve(descriptor.Container, descriptor.Base, descriptor.Ext)
	if err != nil {
		report.skipped(fsys.Join(descriptor.Container, descriptor.fileName()), SkipResolve, err)
		self.logger.Warnf("cannot resolve %s in %s: %s", descriptor.fileName(), descriptor.Container, err.Error())
		return
	}

	data, err := fsys.ReadFile(location)
	if err != nil {
		report.skipped(location, SkipDecode, err)
		self.logger.Warnf("cannot read %s: %s", location, err.Error())
		return
	}

	f, err := self.registrar.Decode(data)
	if err != nil {
		report.skipped(location, SkipDecode, err)
		self.logger.Warnf(
			"cannot decode %s (content sniffed as %s): %s",
			location, mimetype.Detect(data).String(), err.Error(),
		)
		return
	}

	name, err := self.registrar.Register(f)
	if err != nil {
		report.skipped(location, SkipRegister, err)
		self.logger.Warnf("cannot register %s: %s", location, err.Error())
		return
	}
	report.loaded(name)
	self.logger.Debugf("loaded %s from %s", name, location)
}
