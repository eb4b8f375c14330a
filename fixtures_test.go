package dmidecode_test

// two records, space indented the way dmidecode 3.3 prints them
const biosReport = `# dmidecode 3.3
Getting SMBIOS data from sysfs.
SMBIOS 3.4.0 present.
Handle 0x0000, DMI type 0, 26 bytes
BIOS Information
        Vendor: Acme
        Characteristics:
                Feature A
                Feature B

Handle 0x0007, DMI type 13, 22 bytes
BIOS Language Information
        Installable Languages: 1
                en|US|iso8859-1
        Currently Installed Language: en|US|iso8859-1
`

const memoryReport = `Handle 0x1100, DMI type 17, 40 bytes
Memory Device
	Size: 8 GB
	Locator: DIMM A1
	Speed: 3200 MT/s

Handle 0x1000, DMI type 16, 23 bytes
Physical Memory Array
	Location: System Board Or Motherboard
	Number Of Devices: 2

Handle 0x1101, DMI type 17, 40 bytes
Memory Device
	Size: 16 GB
	Locator: DIMM B1
	Speed: 3200 MT/s
`

const brokenReport = `Handle 0x0001, DMI type 1, 27 bytes
System Information
	Manufacturer: LENOVO

Handle 0x0002, DMI type two, 15 bytes
Base Board Information
	Manufacturer: LENOVO

Handle 0x0003, DMI
Chassis Information

Handle 0x0004, DMI type 3, 22 bytes
Chassis Information
	Type: Notebook
`

// tab indented output as printed by dmidecode 3.1
const processorReport = "\n# dmidecode 3.1\n" +
	"Getting SMBIOS data from sysfs.\n" +
	"SMBIOS 2.6 present.\n" +
	"\n" +
	"Handle 0x002C, DMI type 4, 42 bytes\n" +
	"Processor Information\n" +
	"\tSocket Designation: CPU\n" +
	"\tType: Central Processor\n" +
	"\tFamily: Core 2 Duo\n" +
	"\tSignature: Type 0, Family 6, Model 37, Stepping 5\n" +
	"\tFlags:\n" +
	"\t\tFPU (Floating-point unit on-chip)\n" +
	"\t\tVME (Virtual mode extension)\n" +
	"\t\tDE (Debugging extension)\n" +
	"\tVersion: Intel(R) Core(TM) i3 CPU       M 370  @ 2.40GHz\n" +
	"\tCore Count: 2\n" +
	"\tCharacteristics:\n" +
	"\t\t64-bit capable\n"
