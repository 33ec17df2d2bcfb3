package codegen

const headerTemplate = `{{define "header"}}/* {{.Params}} */
#ifndef {{.Guard}}
#define {{.Guard}}

#include <stddef.h>
#include <stdint.h>

#ifdef __cplusplus
extern "C" {
#endif

{{.Type}} {{.Ident}}(const uint8_t *data, size_t length);

#ifdef __cplusplus
}
#endif

#endif /* {{.Guard}} */
{{end}}`

const sourceTemplate = `{{define "source"}}/* {{.Params}} */
#include "{{.Ident}}.h"

static const {{.Type}} table[256] = {
{{- range rows .Table 8}}
    {{join . ", "}},
{{- end}}
};
{{if .Reverse}}
static {{.Type}} reflect({{.Type}} value)
{
    {{.Type}} result = 0;
    unsigned i;

    for (i = 0; i < {{.Params.Width}}u; i++) {
        result = ({{.Type}})((result << 1) | (value & 1u));
        value >>= 1;
    }
    return result;
}
{{end}}
{{.Type}} {{.Ident}}(const uint8_t *data, size_t length)
{
    {{.Type}} crc = {{.Seed}};
    size_t i;

    for (i = 0; i < length; i++) {
{{- if .Reflected}}
        crc = ({{.Type}})((crc >> 8) ^ table[(crc ^ data[i]) & 0xffu]);
{{- else}}
        crc = ({{.Type}})(((crc << 8) ^ table[((crc >> {{.TopShift}}) ^ data[i]) & 0xffu]) & {{.RegMask}});
{{- end}}
    }
{{- if .OutShift}}
    crc >>= {{.OutShift}};
{{- end}}
{{- if .Reverse}}
    crc = reflect(crc);
{{- end}}
    return ({{.Type}})((crc ^ {{.XorOut}}) & {{.Mask}});
}
{{end}}`

const testTemplate = `{{define "test"}}#include "unity.h"
#include <string.h>

#include "{{.Ident}}.h"

void setUp(void)
{
}

void tearDown(void)
{
}

void test_{{.Ident}}(void)
{
  const char* check_string = "123456789";
  size_t check_length = strlen(check_string);
  {{.Type}} result = {{.Ident}}((const uint8_t*)check_string, check_length);
  TEST_ASSERT_EQUAL_HEX{{.TypeBits}}({{.Check}}, result);
}
{{end}}`
