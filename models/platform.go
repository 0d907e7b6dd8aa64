package models

// OS is a normalised operating system label.
type OS string

const (
	OSWindows OS = "windows"
	OSMacOS   OS = "macos"
	OSLinux   OS = "linux"
	OSBSD     OS = "bsd"
	OSOther   OS = "other"
)

// Arch is a normalised CPU architecture label.
type Arch string

const (
	ArchARM64   Arch = "arm64"
	ArchX86_64  Arch = "x86_64"
	ArchARMv7   Arch = "armv7"
	ArchX86     Arch = "x86"
	ArchUnknown Arch = "unknown"
)

// Platform pairs an OS with an architecture.
type Platform struct {
	OS   OS
	Arch Arch
}

// String returns the "os/arch" form used in reports and for sorting.
func (p Platform) String() string {
	return string(p.OS) + "/" + string(p.Arch)
}

// Packaging is a normalised archive or installer format.
type Packaging string

const (
	PackagingZip   Packaging = "zip"
	PackagingTarGz Packaging = "tar.gz"
	PackagingTarXz Packaging = "tar.xz"
	PackagingExe   Packaging = "exe"
	PackagingMsi   Packaging = "msi"
	PackagingDmg   Packaging = "dmg"
	PackagingFile  Packaging = "file"
)

// Row is the aggregate of every asset in a release that shares a platform
// and packaging.
type Row struct {
	Platform  Platform
	Packaging Packaging
	Downloads int64
	SizeBytes int64
	ShortName string
}
