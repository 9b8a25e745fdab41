package elf

import (
	"fmt"
)

// e_machine
type Machine uint16

const (
	MachineNONE          = Machine(0)      // EM_NONE
	MachineM32           = Machine(1)      // EM_M32
	MachineSPARC         = Machine(2)      // EM_SPARC
	MachineI386          = Machine(3)      // EM_386
	MachineM68K          = Machine(4)      // EM_68K
	MachineM88K          = Machine(5)      // EM_88K
	MachineIAMCU         = Machine(6)      // EM_IAMCU
	MachineI860          = Machine(7)      // EM_860
	MachineMIPS          = Machine(8)      // EM_MIPS
	MachineS370          = Machine(9)      // EM_S370
	MachineMIPS_RS3_LE   = Machine(10)     // EM_MIPS_RS3_LE
	MachinePARISC        = Machine(15)     // EM_PARISC
	MachineVPP500        = Machine(17)     // EM_VPP500
	MachineSPARC32PLUS   = Machine(18)     // EM_SPARC32PLUS
	MachineI960          = Machine(19)     // EM_960
	MachinePPC           = Machine(20)     // EM_PPC
	MachinePPC64         = Machine(21)     // EM_PPC64
	MachineS390          = Machine(22)     // EM_S390
	MachineSPU           = Machine(23)     // EM_SPU
	MachineV800          = Machine(36)     // EM_V800
	MachineFR20          = Machine(37)     // EM_FR20
	MachineRH32          = Machine(38)     // EM_RH32
	MachineRCE           = Machine(39)     // EM_RCE
	MachineARM           = Machine(40)     // EM_ARM
	MachineALPHA         = Machine(41)     // EM_ALPHA
	MachineSH            = Machine(42)     // EM_SH
	MachineSPARCV9       = Machine(43)     // EM_SPARCV9
	MachineTRICORE       = Machine(44)     // EM_TRICORE
	MachineARC           = Machine(45)     // EM_ARC
	MachineH8_300        = Machine(46)     // EM_H8_300
	MachineH8_300H       = Machine(47)     // EM_H8_300H
	MachineH8S           = Machine(48)     // EM_H8S
	MachineH8_500        = Machine(49)     // EM_H8_500
	MachineIA_64         = Machine(50)     // EM_IA_64
	MachineMIPS_X        = Machine(51)     // EM_MIPS_X
	MachineCOLDFIRE      = Machine(52)     // EM_COLDFIRE
	MachineM68HC12       = Machine(53)     // EM_68HC12
	MachineMMA           = Machine(54)     // EM_MMA
	MachinePCP           = Machine(55)     // EM_PCP
	MachineNCPU          = Machine(56)     // EM_NCPU
	MachineNDR1          = Machine(57)     // EM_NDR1
	MachineSTARCORE      = Machine(58)     // EM_STARCORE
	MachineME16          = Machine(59)     // EM_ME16
	MachineST100         = Machine(60)     // EM_ST100
	MachineTINYJ         = Machine(61)     // EM_TINYJ
	MachineX86_64        = Machine(62)     // EM_X86_64
	MachinePDSP          = Machine(63)     // EM_PDSP
	MachinePDP10         = Machine(64)     // EM_PDP10
	MachinePDP11         = Machine(65)     // EM_PDP11
	MachineFX66          = Machine(66)     // EM_FX66
	MachineST9PLUS       = Machine(67)     // EM_ST9PLUS
	MachineST7           = Machine(68)     // EM_ST7
	MachineM68HC16       = Machine(69)     // EM_68HC16
	MachineM68HC11       = Machine(70)     // EM_68HC11
	MachineM68HC08       = Machine(71)     // EM_68HC08
	MachineM68HC05       = Machine(72)     // EM_68HC05
	MachineSVX           = Machine(73)     // EM_SVX
	MachineST19          = Machine(74)     // EM_ST19
	MachineVAX           = Machine(75)     // EM_VAX
	MachineCRIS          = Machine(76)     // EM_CRIS
	MachineJAVELIN       = Machine(77)     // EM_JAVELIN
	MachineFIREPATH      = Machine(78)     // EM_FIREPATH
	MachineZSP           = Machine(79)     // EM_ZSP
	MachineMMIX          = Machine(80)     // EM_MMIX
	MachineHUANY         = Machine(81)     // EM_HUANY
	MachinePRISM         = Machine(82)     // EM_PRISM
	MachineAVR           = Machine(83)     // EM_AVR
	MachineFR30          = Machine(84)     // EM_FR30
	MachineD10V          = Machine(85)     // EM_D10V
	MachineD30V          = Machine(86)     // EM_D30V
	MachineV850          = Machine(87)     // EM_V850
	MachineM32R          = Machine(88)     // EM_M32R
	MachineMN10300       = Machine(89)     // EM_MN10300
	MachineMN10200       = Machine(90)     // EM_MN10200
	MachinePJ            = Machine(91)     // EM_PJ
	MachineOPENRISC      = Machine(92)     // EM_OPENRISC
	MachineARC_COMPACT   = Machine(93)     // EM_ARC_COMPACT
	MachineXTENSA        = Machine(94)     // EM_XTENSA
	MachineVIDEOCORE     = Machine(95)     // EM_VIDEOCORE
	MachineTMM_GPP       = Machine(96)     // EM_TMM_GPP
	MachineNS32K         = Machine(97)     // EM_NS32K
	MachineTPC           = Machine(98)     // EM_TPC
	MachineSNP1K         = Machine(99)     // EM_SNP1K
	MachineST200         = Machine(100)    // EM_ST200
	MachineIP2K          = Machine(101)    // EM_IP2K
	MachineMAX           = Machine(102)    // EM_MAX
	MachineCR            = Machine(103)    // EM_CR
	MachineF2MC16        = Machine(104)    // EM_F2MC16
	MachineMSP430        = Machine(105)    // EM_MSP430
	MachineBLACKFIN      = Machine(106)    // EM_BLACKFIN
	MachineSE_C33        = Machine(107)    // EM_SE_C33
	MachineSEP           = Machine(108)    // EM_SEP
	MachineARCA          = Machine(109)    // EM_ARCA
	MachineUNICORE       = Machine(110)    // EM_UNICORE
	MachineEXCESS        = Machine(111)    // EM_EXCESS
	MachineDXP           = Machine(112)    // EM_DXP
	MachineALTERA_NIOS2  = Machine(113)    // EM_ALTERA_NIOS2
	MachineCRX           = Machine(114)    // EM_CRX
	MachineXGATE         = Machine(115)    // EM_XGATE
	MachineC166          = Machine(116)    // EM_C166
	MachineM16C          = Machine(117)    // EM_M16C
	MachineDSPIC30F      = Machine(118)    // EM_DSPIC30F
	MachineCE            = Machine(119)    // EM_CE
	MachineM32C          = Machine(120)    // EM_M32C
	MachineTSK3000       = Machine(131)    // EM_TSK3000
	MachineRS08          = Machine(132)    // EM_RS08
	MachineSHARC         = Machine(133)    // EM_SHARC
	MachineECOG2         = Machine(134)    // EM_ECOG2
	MachineSCORE7        = Machine(135)    // EM_SCORE7
	MachineDSP24         = Machine(136)    // EM_DSP24
	MachineVIDEOCORE3    = Machine(137)    // EM_VIDEOCORE3
	MachineLATTICEMICO32 = Machine(138)    // EM_LATTICEMICO32
	MachineSE_C17        = Machine(139)    // EM_SE_C17
	MachineTI_C6000      = Machine(140)    // EM_TI_C6000
	MachineTI_C2000      = Machine(141)    // EM_TI_C2000
	MachineTI_C5500      = Machine(142)    // EM_TI_C5500
	MachineMMDSP_PLUS    = Machine(160)    // EM_MMDSP_PLUS
	MachineCYPRESS_M8C   = Machine(161)    // EM_CYPRESS_M8C
	MachineR32C          = Machine(162)    // EM_R32C
	MachineTRIMEDIA      = Machine(163)    // EM_TRIMEDIA
	MachineQDSP6         = Machine(164)    // EM_QDSP6
	MachineI8051         = Machine(165)    // EM_8051
	MachineSTXP7X        = Machine(166)    // EM_STXP7X
	MachineNDS32         = Machine(167)    // EM_NDS32
	MachineECOG1         = Machine(168)    // EM_ECOG1
	MachineMAXQ30        = Machine(169)    // EM_MAXQ30
	MachineXIMO16        = Machine(170)    // EM_XIMO16
	MachineMANIK         = Machine(171)    // EM_MANIK
	MachineCRAYNV2       = Machine(172)    // EM_CRAYNV2
	MachineRX            = Machine(173)    // EM_RX
	MachineMETAG         = Machine(174)    // EM_METAG
	MachineMCST_ELBRUS   = Machine(175)    // EM_MCST_ELBRUS
	MachineECOG16        = Machine(176)    // EM_ECOG16
	MachineCR16          = Machine(177)    // EM_CR16
	MachineETPU          = Machine(178)    // EM_ETPU
	MachineSLE9X         = Machine(179)    // EM_SLE9X
	MachineL10M          = Machine(180)    // EM_L10M
	MachineK10M          = Machine(181)    // EM_K10M
	MachineAARCH64       = Machine(183)    // EM_AARCH64
	MachineAVR32         = Machine(185)    // EM_AVR32
	MachineSTM8          = Machine(186)    // EM_STM8
	MachineTILE64        = Machine(187)    // EM_TILE64
	MachineTILEPRO       = Machine(188)    // EM_TILEPRO
	MachineMICROBLAZE    = Machine(189)    // EM_MICROBLAZE
	MachineCUDA          = Machine(190)    // EM_CUDA
	MachineTILEGX        = Machine(191)    // EM_TILEGX
	MachineCLOUDSHIELD   = Machine(192)    // EM_CLOUDSHIELD
	MachineCOREA_1ST     = Machine(193)    // EM_COREA_1ST
	MachineCOREA_2ND     = Machine(194)    // EM_COREA_2ND
	MachineARC_COMPACT2  = Machine(195)    // EM_ARC_COMPACT2
	MachineOPEN8         = Machine(196)    // EM_OPEN8
	MachineRL78          = Machine(197)    // EM_RL78
	MachineVIDEOCORE5    = Machine(198)    // EM_VIDEOCORE5
	MachineR78KOR        = Machine(199)    // EM_78KOR
	MachineF56800EX      = Machine(200)    // EM_56800EX
	MachineBA1           = Machine(201)    // EM_BA1
	MachineBA2           = Machine(202)    // EM_BA2
	MachineXCORE         = Machine(203)    // EM_XCORE
	MachineMCHP_PIC      = Machine(204)    // EM_MCHP_PIC
	MachineKM32          = Machine(210)    // EM_KM32
	MachineKMX32         = Machine(211)    // EM_KMX32
	MachineKMX16         = Machine(212)    // EM_KMX16
	MachineKMX8          = Machine(213)    // EM_KMX8
	MachineKVARC         = Machine(214)    // EM_KVARC
	MachineCDP           = Machine(215)    // EM_CDP
	MachineCOGE          = Machine(216)    // EM_COGE
	MachineCOOL          = Machine(217)    // EM_COOL
	MachineNORC          = Machine(218)    // EM_NORC
	MachineCSR_KALIMBA   = Machine(219)    // EM_CSR_KALIMBA
	MachineZ80           = Machine(220)    // EM_Z80
	MachineVISIUM        = Machine(221)    // EM_VISIUM
	MachineFT32          = Machine(222)    // EM_FT32
	MachineMOXIE         = Machine(223)    // EM_MOXIE
	MachineAMDGPU        = Machine(224)    // EM_AMDGPU
	MachineRISCV         = Machine(243)    // EM_RISCV
	MachineLANAI         = Machine(244)    // EM_LANAI
	MachineBPF           = Machine(247)    // EM_BPF
	MachineCSKY          = Machine(252)    // EM_CSKY
	MachineLOONGARCH     = Machine(258)    // EM_LOONGARCH
	MachineALPHA_EXP     = Machine(0x9026) // EM_ALPHA_EXP
)

type machineInfo struct {
	name        string
	description string
}

var machines = map[Machine]machineInfo{
	MachineNONE:          {"NONE", "No machine"},
	MachineM32:           {"M32", "AT&T WE 32100"},
	MachineSPARC:         {"SPARC", "SPARC"},
	MachineI386:          {"386", "Intel 80386"},
	MachineM68K:          {"68K", "Motorola 68000"},
	MachineM88K:          {"88K", "Motorola 88000"},
	MachineIAMCU:         {"IAMCU", "Intel MCU"},
	MachineI860:          {"860", "Intel 80860"},
	MachineMIPS:          {"MIPS", "MIPS I Architecture"},
	MachineS370:          {"S370", "IBM System/370"},
	MachineMIPS_RS3_LE:   {"MIPS_RS3_LE", "MIPS RS3000 Little-endian"},
	MachinePARISC:        {"PARISC", "Hewlett-Packard PA-RISC"},
	MachineVPP500:        {"VPP500", "Fujitsu VPP500"},
	MachineSPARC32PLUS:   {"SPARC32PLUS", "Enhanced instruction set SPARC"},
	MachineI960:          {"960", "Intel 80960"},
	MachinePPC:           {"PPC", "PowerPC"},
	MachinePPC64:         {"PPC64", "64-bit PowerPC"},
	MachineS390:          {"S390", "IBM System/390"},
	MachineSPU:           {"SPU", "IBM SPU/SPC"},
	MachineV800:          {"V800", "NEC V800"},
	MachineFR20:          {"FR20", "Fujitsu FR20"},
	MachineRH32:          {"RH32", "TRW RH-32"},
	MachineRCE:           {"RCE", "Motorola RCE"},
	MachineARM:           {"ARM", "ARM 32-bit architecture (AARCH32)"},
	MachineALPHA:         {"ALPHA", "Digital Alpha"},
	MachineSH:            {"SH", "Hitachi SH"},
	MachineSPARCV9:       {"SPARCV9", "SPARC Version 9"},
	MachineTRICORE:       {"TRICORE", "Siemens TriCore embedded processor"},
	MachineARC:           {"ARC", "Argonaut RISC Core"},
	MachineH8_300:        {"H8_300", "Hitachi H8/300"},
	MachineH8_300H:       {"H8_300H", "Hitachi H8/300H"},
	MachineH8S:           {"H8S", "Hitachi H8S"},
	MachineH8_500:        {"H8_500", "Hitachi H8/500"},
	MachineIA_64:         {"IA_64", "Intel IA-64 processor architecture"},
	MachineMIPS_X:        {"MIPS_X", "Stanford MIPS-X"},
	MachineCOLDFIRE:      {"COLDFIRE", "Motorola ColdFire"},
	MachineM68HC12:       {"68HC12", "Motorola M68HC12"},
	MachineMMA:           {"MMA", "Fujitsu MMA Multimedia Accelerator"},
	MachinePCP:           {"PCP", "Siemens PCP"},
	MachineNCPU:          {"NCPU", "Sony nCPU embedded RISC processor"},
	MachineNDR1:          {"NDR1", "Denso NDR1 microprocessor"},
	MachineSTARCORE:      {"STARCORE", "Motorola Star*Core processor"},
	MachineME16:          {"ME16", "Toyota ME16 processor"},
	MachineST100:         {"ST100", "STMicroelectronics ST100 processor"},
	MachineTINYJ:         {"TINYJ", "Advanced Logic Corp. TinyJ embedded processor family"},
	MachineX86_64:        {"X86_64", "AMD x86-64 architecture"},
	MachinePDSP:          {"PDSP", "Sony DSP Processor"},
	MachinePDP10:         {"PDP10", "Digital Equipment Corp. PDP-10"},
	MachinePDP11:         {"PDP11", "Digital Equipment Corp. PDP-11"},
	MachineFX66:          {"FX66", "Siemens FX66 microcontroller"},
	MachineST9PLUS:       {"ST9PLUS", "STMicroelectronics ST9+ 8/16 bit microcontroller"},
	MachineST7:           {"ST7", "STMicroelectronics ST7 8-bit microcontroller"},
	MachineM68HC16:       {"68HC16", "Motorola MC68HC16 Microcontroller"},
	MachineM68HC11:       {"68HC11", "Motorola MC68HC11 Microcontroller"},
	MachineM68HC08:       {"68HC08", "Motorola MC68HC08 Microcontroller"},
	MachineM68HC05:       {"68HC05", "Motorola MC68HC05 Microcontroller"},
	MachineSVX:           {"SVX", "Silicon Graphics SVx"},
	MachineST19:          {"ST19", "STMicroelectronics ST19 8-bit microcontroller"},
	MachineVAX:           {"VAX", "Digital VAX"},
	MachineCRIS:          {"CRIS", "Axis Communications 32-bit embedded processor"},
	MachineJAVELIN:       {"JAVELIN", "Infineon Technologies 32-bit embedded processor"},
	MachineFIREPATH:      {"FIREPATH", "Element 14 64-bit DSP Processor"},
	MachineZSP:           {"ZSP", "LSI Logic 16-bit DSP Processor"},
	MachineMMIX:          {"MMIX", "Donald Knuth's educational 64-bit processor"},
	MachineHUANY:         {"HUANY", "Harvard University machine-independent object files"},
	MachinePRISM:         {"PRISM", "SiTera Prism"},
	MachineAVR:           {"AVR", "Atmel AVR 8-bit microcontroller"},
	MachineFR30:          {"FR30", "Fujitsu FR30"},
	MachineD10V:          {"D10V", "Mitsubishi D10V"},
	MachineD30V:          {"D30V", "Mitsubishi D30V"},
	MachineV850:          {"V850", "NEC v850"},
	MachineM32R:          {"M32R", "Mitsubishi M32R"},
	MachineMN10300:       {"MN10300", "Matsushita MN10300"},
	MachineMN10200:       {"MN10200", "Matsushita MN10200"},
	MachinePJ:            {"PJ", "picoJava"},
	MachineOPENRISC:      {"OPENRISC", "OpenRISC 32-bit embedded processor"},
	MachineARC_COMPACT:   {"ARC_COMPACT", "ARC International ARCompact processor"},
	MachineXTENSA:        {"XTENSA", "Tensilica Xtensa Architecture"},
	MachineVIDEOCORE:     {"VIDEOCORE", "Alphamosaic VideoCore processor"},
	MachineTMM_GPP:       {"TMM_GPP", "Thompson Multimedia General Purpose Processor"},
	MachineNS32K:         {"NS32K", "National Semiconductor 32000 series"},
	MachineTPC:           {"TPC", "Tenor Network TPC processor"},
	MachineSNP1K:         {"SNP1K", "Trebia SNP 1000 processor"},
	MachineST200:         {"ST200", "STMicroelectronics ST200 microcontroller"},
	MachineIP2K:          {"IP2K", "Ubicom IP2xxx microcontroller family"},
	MachineMAX:           {"MAX", "MAX Processor"},
	MachineCR:            {"CR", "National Semiconductor CompactRISC microprocessor"},
	MachineF2MC16:        {"F2MC16", "Fujitsu F2MC16"},
	MachineMSP430:        {"MSP430", "Texas Instruments embedded microcontroller msp430"},
	MachineBLACKFIN:      {"BLACKFIN", "Analog Devices Blackfin (DSP) processor"},
	MachineSE_C33:        {"SE_C33", "S1C33 Family of Seiko Epson processors"},
	MachineSEP:           {"SEP", "Sharp embedded microprocessor"},
	MachineARCA:          {"ARCA", "Arca RISC Microprocessor"},
	MachineUNICORE:       {"UNICORE", "Microprocessor series from PKU-Unity Ltd. and MPRC of Peking University"},
	MachineEXCESS:        {"EXCESS", "eXcess: 16/32/64-bit configurable embedded CPU"},
	MachineDXP:           {"DXP", "Icera Semiconductor Inc. Deep Execution Processor"},
	MachineALTERA_NIOS2:  {"ALTERA_NIOS2", "Altera Nios II soft-core processor"},
	MachineCRX:           {"CRX", "National Semiconductor CompactRISC CRX microprocessor"},
	MachineXGATE:         {"XGATE", "Motorola XGATE embedded processor"},
	MachineC166:          {"C166", "Infineon C16x/XC16x processor"},
	MachineM16C:          {"M16C", "Renesas M16C series microprocessors"},
	MachineDSPIC30F:      {"DSPIC30F", "Microchip Technology dsPIC30F Digital Signal Controller"},
	MachineCE:            {"CE", "Freescale Communication Engine RISC core"},
	MachineM32C:          {"M32C", "Renesas M32C series microprocessors"},
	MachineTSK3000:       {"TSK3000", "Altium TSK3000 core"},
	MachineRS08:          {"RS08", "Freescale RS08 embedded processor"},
	MachineSHARC:         {"SHARC", "Analog Devices SHARC family of 32-bit DSP processors"},
	MachineECOG2:         {"ECOG2", "Cyan Technology eCOG2 microprocessor"},
	MachineSCORE7:        {"SCORE7", "Sunplus S+core7 RISC processor"},
	MachineDSP24:         {"DSP24", "New Japan Radio (NJR) 24-bit DSP Processor"},
	MachineVIDEOCORE3:    {"VIDEOCORE3", "Broadcom VideoCore III processor"},
	MachineLATTICEMICO32: {"LATTICEMICO32", "RISC processor for Lattice FPGA architecture"},
	MachineSE_C17:        {"SE_C17", "Seiko Epson C17 family"},
	MachineTI_C6000:      {"TI_C6000", "The Texas Instruments TMS320C6000 DSP family"},
	MachineTI_C2000:      {"TI_C2000", "The Texas Instruments TMS320C2000 DSP family"},
	MachineTI_C5500:      {"TI_C5500", "The Texas Instruments TMS320C55x DSP family"},
	MachineMMDSP_PLUS:    {"MMDSP_PLUS", "STMicroelectronics 64bit VLIW Data Signal Processor"},
	MachineCYPRESS_M8C:   {"CYPRESS_M8C", "Cypress M8C microprocessor"},
	MachineR32C:          {"R32C", "Renesas R32C series microprocessors"},
	MachineTRIMEDIA:      {"TRIMEDIA", "NXP Semiconductors TriMedia architecture family"},
	MachineQDSP6:         {"QDSP6", "QUALCOMM DSP6 Processor"},
	MachineI8051:         {"8051", "Intel 8051 and variants"},
	MachineSTXP7X:        {"STXP7X", "STMicroelectronics STxP7x family of configurable and extensible RISC processors"},
	MachineNDS32:         {"NDS32", "Andes Technology compact code size embedded RISC processor family"},
	MachineECOG1:         {"ECOG1", "Cyan Technology eCOG1X family"},
	MachineMAXQ30:        {"MAXQ30", "Dallas Semiconductor MAXQ30 Core Micro-controllers"},
	MachineXIMO16:        {"XIMO16", "New Japan Radio (NJR) 16-bit DSP Processor"},
	MachineMANIK:         {"MANIK", "M2000 Reconfigurable RISC Microprocessor"},
	MachineCRAYNV2:       {"CRAYNV2", "Cray Inc. NV2 vector architecture"},
	MachineRX:            {"RX", "Renesas RX family"},
	MachineMETAG:         {"METAG", "Imagination Technologies META processor architecture"},
	MachineMCST_ELBRUS:   {"MCST_ELBRUS", "MCST Elbrus general purpose hardware architecture"},
	MachineECOG16:        {"ECOG16", "Cyan Technology eCOG16 family"},
	MachineCR16:          {"CR16", "National Semiconductor CompactRISC CR16 16-bit microprocessor"},
	MachineETPU:          {"ETPU", "Freescale Extended Time Processing Unit"},
	MachineSLE9X:         {"SLE9X", "Infineon Technologies SLE9X core"},
	MachineL10M:          {"L10M", "Intel L10M"},
	MachineK10M:          {"K10M", "Intel K10M"},
	MachineAARCH64:       {"AARCH64", "ARM 64-bit architecture (AARCH64)"},
	MachineAVR32:         {"AVR32", "Atmel Corporation 32-bit microprocessor family"},
	MachineSTM8:          {"STM8", "STMicroeletronics STM8 8-bit microcontroller"},
	MachineTILE64:        {"TILE64", "Tilera TILE64 multicore architecture family"},
	MachineTILEPRO:       {"TILEPRO", "Tilera TILEPro multicore architecture family"},
	MachineMICROBLAZE:    {"MICROBLAZE", "Xilinx MicroBlaze 32-bit RISC soft processor core"},
	MachineCUDA:          {"CUDA", "NVIDIA CUDA architecture"},
	MachineTILEGX:        {"TILEGX", "Tilera TILE-Gx multicore architecture family"},
	MachineCLOUDSHIELD:   {"CLOUDSHIELD", "CloudShield architecture family"},
	MachineCOREA_1ST:     {"COREA_1ST", "KIPO-KAIST Core-A 1st generation processor family"},
	MachineCOREA_2ND:     {"COREA_2ND", "KIPO-KAIST Core-A 2nd generation processor family"},
	MachineARC_COMPACT2:  {"ARC_COMPACT2", "Synopsys ARCompact V2"},
	MachineOPEN8:         {"OPEN8", "Open8 8-bit RISC soft processor core"},
	MachineRL78:          {"RL78", "Renesas RL78 family"},
	MachineVIDEOCORE5:    {"VIDEOCORE5", "Broadcom VideoCore V processor"},
	MachineR78KOR:        {"78KOR", "Renesas 78KOR family"},
	MachineF56800EX:      {"56800EX", "Freescale 56800EX Digital Signal Controller (DSC)"},
	MachineBA1:           {"BA1", "Beyond BA1 CPU architecture"},
	MachineBA2:           {"BA2", "Beyond BA2 CPU architecture"},
	MachineXCORE:         {"XCORE", "XMOS xCORE processor family"},
	MachineMCHP_PIC:      {"MCHP_PIC", "Microchip 8-bit PIC(r) family"},
	MachineKM32:          {"KM32", "KM211 KM32 32-bit processor"},
	MachineKMX32:         {"KMX32", "KM211 KMX32 32-bit processor"},
	MachineKMX16:         {"KMX16", "KM211 KMX16 16-bit processor"},
	MachineKMX8:          {"KMX8", "KM211 KMX8 8-bit processor"},
	MachineKVARC:         {"KVARC", "KM211 KVARC processor"},
	MachineCDP:           {"CDP", "Paneve CDP architecture family"},
	MachineCOGE:          {"COGE", "Cognitive Smart Memory Processor"},
	MachineCOOL:          {"COOL", "Bluechip Systems CoolEngine"},
	MachineNORC:          {"NORC", "Nanoradio Optimized RISC"},
	MachineCSR_KALIMBA:   {"CSR_KALIMBA", "CSR Kalimba architecture family"},
	MachineZ80:           {"Z80", "Zilog Z80"},
	MachineVISIUM:        {"VISIUM", "Controls and Data Services VISIUMcore processor"},
	MachineFT32:          {"FT32", "FTDI Chip FT32 high performance 32-bit RISC architecture"},
	MachineMOXIE:         {"MOXIE", "Moxie processor family"},
	MachineAMDGPU:        {"AMDGPU", "AMD GPU architecture"},
	MachineRISCV:         {"RISCV", "RISC-V"},
	MachineLANAI:         {"LANAI", "Lanai 32-bit processor"},
	MachineBPF:           {"BPF", "Linux BPF - in-kernel virtual machine"},
	MachineCSKY:          {"CSKY", "C-SKY"},
	MachineLOONGARCH:     {"LOONGARCH", "LoongArch"},
	MachineALPHA_EXP:     {"ALPHA_EXP", "Digital Alpha (experimental)"},
}

func DecodeMachine(value uint16) (Machine, error) {
	machine := Machine(value)
	if _, ok := machines[machine]; !ok {
		return 0, invalidEnum(EnumTableMachine, uint64(value))
	}
	return machine, nil
}

func (machine Machine) String() string {
	info, ok := machines[machine]
	if !ok {
		return fmt.Sprintf("MachineUnknown(%d)", uint16(machine))
	}
	return info.name
}

func (machine Machine) Description() string {
	info, ok := machines[machine]
	if !ok {
		return machine.String()
	}
	return info.description
}
