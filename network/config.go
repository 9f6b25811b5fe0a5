package network

import (
	"fmt"
	"log"
	"net"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration describes one network listener: where it binds, and the
// address it advertises to the rest of the cluster.
type Configuration struct {
	name              string
	advertisedAddress string
	advertisedPort    int
	bindAddress       string
	bindPort          int
}

func (c Configuration) Name() string {
	return c.name
}
func (c Configuration) AdvertisedAddress() string {
	return c.advertisedAddress
}
func (c Configuration) AdvertisedPort() int {
	return c.advertisedPort
}
func (c Configuration) BindAddress() string {
	return c.bindAddress
}
func (c Configuration) BindPort() int {
	if c.bindPort == 0 {
		panic("invalid bind port: 0")
	}
	return c.bindPort
}

func randomFreePort(host string) (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", fmt.Sprintf("%s:0", host))
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func localPrivateHost() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}
	for _, v := range ifaces {
		if v.Flags&net.FlagLoopback != net.FlagLoopback && v.Flags&net.FlagUp == net.FlagUp {
			h := v.HardwareAddr.String()
			if len(h) == 0 {
				continue
			}
			addresses, _ := v.Addrs()
			if len(addresses) > 0 {
				ip := addresses[0]
				if ipnet, ok := ip.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
					if ipnet.IP.To4() != nil {
						return ipnet.IP.String()
					}
				}
			}
		}
	}
	return "127.0.0.1"
}

func advertisedAddressFlagName(name string) string {
	return fmt.Sprintf("%s-advertised-address", name)
}
func advertisedPortFlagName(name string) string {
	return fmt.Sprintf("%s-advertised-port", name)
}
func bindAddressFlagName(name string) string {
	return fmt.Sprintf("%s-bind-address", name)
}
func bindPortFlagName(name string) string {
	return fmt.Sprintf("%s-bind-port", name)
}

func (c Configuration) Describe() string {
	return fmt.Sprintf("service %s is running on %s:%d and exposed on %s:%d",
		c.name,
		c.bindAddress, c.bindPort,
		c.advertisedAddress, c.advertisedPort,
	)
}

func ConfigurationFromFlags(v *viper.Viper, name string) Configuration {
	config := Configuration{
		name:              name,
		advertisedAddress: v.GetString(advertisedAddressFlagName(name)),
		advertisedPort:    v.GetInt(advertisedPortFlagName(name)),
		bindAddress:       v.GetString(bindAddressFlagName(name)),
		bindPort:          v.GetInt(bindPortFlagName(name)),
	}
	if len(config.advertisedAddress) == 0 {
		config.advertisedAddress = config.bindAddress
	}
	if config.bindPort == 0 {
		randomPort, err := randomFreePort(config.bindAddress)
		if err != nil {
			panic(err)
		}
		config.bindPort = randomPort
	}
	if config.advertisedPort == 0 {
		config.advertisedPort = config.bindPort
	}
	if net.ParseIP(config.bindAddress) == nil {
		log.Fatalf("invalid bind address specified for service %s: %q", name, config.bindAddress)
	}
	if net.ParseIP(config.advertisedAddress) == nil {
		log.Fatalf("invalid advertised address specified for service %s: %q", name, config.advertisedAddress)
	}
	return config
}
func RegisterFlagsForService(cmd *cobra.Command, config *viper.Viper, name string, defaultPort int) {
	long := bindPortFlagName(name)
	longAddr := bindAddressFlagName(name)
	advLong := advertisedPortFlagName(name)
	advLongAddr := advertisedAddressFlagName(name)

	defaultAddr := localPrivateHost()

	cmd.Flags().IntP(long, "", defaultPort, fmt.Sprintf("Start %s listener on this port", name))
	config.BindPFlag(long, cmd.Flags().Lookup(long))
	config.BindEnv(long, fmt.Sprintf("NOMAD_PORT_%s", name))

	cmd.Flags().StringP(longAddr, "", defaultAddr, fmt.Sprintf("Start %s listener on this address", name))
	config.BindPFlag(longAddr, cmd.Flags().Lookup(longAddr))

	cmd.Flags().StringP(advLongAddr, "", defaultAddr, fmt.Sprintf("Advertise %s listener on this address", name))
	config.BindPFlag(advLongAddr, cmd.Flags().Lookup(advLongAddr))
	config.BindEnv(advLongAddr, fmt.Sprintf("NOMAD_IP_%s", name))

	cmd.Flags().IntP(advLong, "", 0, fmt.Sprintf("Advertise %s listener on this port", name))
	config.BindPFlag(advLong, cmd.Flags().Lookup(advLong))
	config.BindEnv(advLong, fmt.Sprintf("NOMAD_HOST_PORT_%s", name))
}
