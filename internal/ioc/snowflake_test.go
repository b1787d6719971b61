package ioc

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	snowflakesvc "go-snowflake/internal/service/snowflake"
)

func TestLoadSnowflakeConfig(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		env  map[string]string
		want snowflakesvc.Config
	}{
		{
			name: "默认值",
			yaml: ``,
			want: snowflakesvc.Config{
				StartTimestamp:         snowflakesvc.DefaultStartTimestamp,
				ClockBackwardThreshold: snowflakesvc.DefaultClockBackwardThreshold,
			},
		},
		{
			name: "配置文件",
			yaml: `
snowflake:
  datacenterId: 2
  machineId: 6
  startTimestamp: 1700000000000
  clockBackwardThreshold: 10ms
`,
			want: snowflakesvc.Config{
				DatacenterID:           2,
				MachineID:              6,
				StartTimestamp:         1700000000000,
				ClockBackwardThreshold: 10 * time.Millisecond,
			},
		},
		{
			name: "环境变量覆盖配置文件",
			yaml: `
snowflake:
  datacenterId: 2
  machineId: 6
`,
			env: map[string]string{
				"SNOWFLAKE_DATACENTER_ID":   "1",
				"SNOWFLAKE_MACHINE_ID":      "7",
				"SNOWFLAKE_START_TIMESTAMP": "1600000000000",
			},
			want: snowflakesvc.Config{
				DatacenterID:           1,
				MachineID:              7,
				StartTimestamp:         1600000000000,
				ClockBackwardThreshold: snowflakesvc.DefaultClockBackwardThreshold,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			v := viper.New()
			v.SetConfigType("yaml")
			require.NoError(t, v.ReadConfig(bytes.NewBufferString(tc.yaml)))
			cfg, err := loadSnowflakeConfig(v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}
