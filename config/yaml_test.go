package config_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/oskoss/casa-bridge/appliance"
	. "github.com/oskoss/casa-bridge/config"
)

var _ = Describe("Yaml", func() {
	validConfig := YamlConfig{
		FileLocation: "../assets/testConfig.yaml",
	}
	invalidConfig := YamlConfig{
		FileLocation: "doesnotexist.yaml",
	}
	invalidKindConfig := YamlConfig{
		FileLocation: "../assets/testInvalidKind.yaml",
	}
	Describe("Getting all fields", func() {
		Context("with a valid yaml file", func() {
			It("should parse the yaml file successfully", func() {
				expected := CasaConfig{
					Name:              "myCasa",
					DelayMilliseconds: 10,
					Appliances: []ApplianceConfig{
						{Name: "Usha Fan", Kind: appliance.Fan},
						{Name: "GPS 3G Gate Door Opener", Kind: appliance.GateOpener},
					},
					Automatic: AutomaticConfig{Appliance: "GPS 3G Gate Door Opener"},
					Manual: ManualConfig{
						Voltage:    "110 V",
						Appliances: []string{"Usha Fan"},
					},
				}
				miCasaConfig, err := validConfig.GetAllFields()
				Expect(err).To(BeNil())
				Expect(miCasaConfig).To(BeEquivalentTo(&expected))
			})
		})
		Context("with a invalid yaml file", func() {
			It("should fail", func() {
				_, err := invalidConfig.GetAllFields()
				Expect(err).To(Not(BeNil()))
			})
		})
		Context("with an unsupported appliance kind", func() {
			It("should fail", func() {
				_, err := invalidKindConfig.GetAllFields()
				Expect(err).Should(HaveOccurred())
				Expect(err.Error()).Should(ContainSubstring("toaster"))
			})
		})
	})
})

var _ = Describe("Config", func() {
	var casaConfig *CasaConfig
	BeforeEach(func() {
		casaConfig = Default()
	})
	Describe("the default household", func() {
		It("should be valid", func() {
			Expect(casaConfig.Validate()).Should(Succeed())
		})
		It("should drive the gate opener automatically and four appliances at 220 V", func() {
			Expect(casaConfig.Appliances).Should(HaveLen(5))
			Expect(casaConfig.Automatic.Appliance).Should(Equal("GPS 3G Gate Door Opener"))
			Expect(casaConfig.Manual.Voltage).Should(Equal("220 V"))
			Expect(casaConfig.Manual.Appliances).Should(Equal([]string{
				"MicroMax Star Split AC",
				"LG Single Door Refrigerator",
				"Usha Fan",
				"Panasonic TV",
			}))
			Expect(casaConfig.DelayMilliseconds).Should(Equal(2000))
		})
	})
	Describe("validating", func() {
		It("should reject a negative delay", func() {
			casaConfig.DelayMilliseconds = -1
			Expect(casaConfig.Validate()).ShouldNot(Succeed())
		})
		It("should reject duplicate appliance names", func() {
			casaConfig.Appliances = append(casaConfig.Appliances, casaConfig.Appliances[0])
			Expect(casaConfig.Validate()).ShouldNot(Succeed())
		})
		It("should reject an unknown automatic appliance", func() {
			casaConfig.Automatic.Appliance = "Toaster"
			Expect(casaConfig.Validate()).ShouldNot(Succeed())
		})
		It("should reject an unknown manual appliance", func() {
			casaConfig.Manual.Appliances = append(casaConfig.Manual.Appliances, "Toaster")
			Expect(casaConfig.Validate()).ShouldNot(Succeed())
		})
	})
})
