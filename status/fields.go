package status

// ControlField represents a standard field in a dpkg control or status stanza.
type ControlField string

const (
	FieldPackage       ControlField = "Package"
	FieldStatus        ControlField = "Status"
	FieldPriority      ControlField = "Priority"
	FieldSection       ControlField = "Section"
	FieldInstalledSize ControlField = "Installed-Size"
	FieldMaintainer    ControlField = "Maintainer"
	FieldArchitecture  ControlField = "Architecture"
	FieldMultiArch     ControlField = "Multi-Arch"
	FieldSource        ControlField = "Source"
	FieldVersion       ControlField = "Version"
	FieldEssential     ControlField = "Essential"
	FieldDepends       ControlField = "Depends"
	FieldPreDepends    ControlField = "Pre-Depends"
	FieldRecommends    ControlField = "Recommends"
	FieldSuggests      ControlField = "Suggests"
	FieldEnhances      ControlField = "Enhances"
	FieldConflicts     ControlField = "Conflicts"
	FieldBreaks        ControlField = "Breaks"
	FieldReplaces      ControlField = "Replaces"
	FieldProvides      ControlField = "Provides"
	FieldHomepage      ControlField = "Homepage"
	FieldDescription   ControlField = "Description"
	FieldConffiles     ControlField = "Conffiles"
)

// IndexField represents a field that appears only in Packages index stanzas,
// not in a package's own control file.
type IndexField string

const (
	IdxFilename IndexField = "Filename"
	IdxSize     IndexField = "Size"
	IdxMD5sum   IndexField = "MD5sum"
	IdxSHA1     IndexField = "SHA1"
	IdxSHA256   IndexField = "SHA256"
)
